package messages

// Embedded template messages.
const (
	TemplatesReadFailedFmt   = "failed to read template %s: %w"
	TemplatesParseFailedFmt  = "failed to parse template %s: %w"
	TemplatesRenderFailedFmt = "failed to render template %s: %w"
)
