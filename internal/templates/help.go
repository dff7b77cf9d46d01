package templates

// HelpEntry is one command line in the help output.
type HelpEntry struct {
	Token       string
	Description string
}

// HelpSection groups entries under a title.
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpPage is the data for HelpTemplate.
type HelpPage struct {
	Header   string
	Sections []HelpSection
}

// HelpTemplate renders the command overview.
var HelpTemplate = Parse("help", `{{with .Header}}{{.}}
{{end}}{{range .Sections}}
{{.Title}}
{{range .Entries}}  {{printf "%-10s" .Token}} {{.Description}}
{{end}}{{end}}`)
