package exec

import (
	"maps"
	"os"
)

// settings is one layer of command configuration. A nil inheritEnv leaves
// the decision to the layer below.
type settings struct {
	env        map[string]string
	dir        string
	inheritEnv *bool
}

func (s settings) clone() settings {
	out := settings{
		env: maps.Clone(s.env),
		dir: s.dir,
	}
	if out.env == nil {
		out.env = make(map[string]string)
	}
	if s.inheritEnv != nil {
		v := *s.inheritEnv
		out.inheritEnv = &v
	}
	return out
}

// config layers per-run settings over the defaults given to New. The
// local layer is cleared after every Run or Spawn.
type config struct {
	global settings
	local  settings
}

func newConfig() *config {
	return &config{
		global: settings{env: make(map[string]string)},
		local:  settings{env: make(map[string]string)},
	}
}

func (c *config) clone() *config {
	return &config{
		global: c.global.clone(),
		local:  c.local.clone(),
	}
}

// environ returns the environment for a command, or nil to inherit the
// parent's environment unchanged.
func (c *config) environ() []string {
	env := make(map[string]string, len(c.global.env)+len(c.local.env))
	maps.Copy(env, c.global.env)
	maps.Copy(env, c.local.env)

	inherit := c.global.inheritEnv != nil && *c.global.inheritEnv
	if c.local.inheritEnv != nil {
		inherit = *c.local.inheritEnv
	}

	if !inherit && len(env) == 0 {
		return nil
	}

	var out []string
	if inherit {
		out = os.Environ()
	}
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	return out
}

func (c *config) dir() string {
	if c.local.dir != "" {
		return c.local.dir
	}
	return c.global.dir
}

func (c *config) resetLocal() {
	c.local = settings{env: make(map[string]string)}
}
