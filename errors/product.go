package errors

// Product identity used in rendered messages. The variables are set at
// link time for branded builds, e.g.
//
//	go build -ldflags "-X github.com/jmgilman/go/tunnelcli/errors.ApplicationName=code-insiders"
var (
	// ApplicationName is the name of the CLI binary.
	ApplicationName = "code"

	// QualitylessProductName is the product name without a quality suffix.
	QualitylessProductName = "Code"

	// DocumentationURL is the base URL of the product documentation.
	// Empty in builds that ship without documentation.
	DocumentationURL = ""
)

// ControlPort is the tunnel port reserved for control traffic.
const ControlPort = 31545

// documentationURL returns DocumentationURL or a placeholder when unset.
func documentationURL() string {
	if DocumentationURL == "" {
		return "<docs>"
	}
	return DocumentationURL
}
