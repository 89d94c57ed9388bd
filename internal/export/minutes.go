package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"scrumcmd/internal/models"
)

var minutesMarkdown = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM, // headings, lists, task lists, and tables in the section text
	),
)

type minutesSection struct {
	icon, title, body string
}

// MinutesHTML renders meeting minutes as a self-contained printable
// document. Section text is treated as GitHub-flavored markdown; empty
// sections are omitted entirely.
func MinutesHTML(m models.Meeting, attendeeNames []string, projectName string, now time.Time) (string, error) {
	sections := []minutesSection{
		{"📌", "Agenda", m.Agenda},
		{"📝", "Discussion Notes", m.Notes},
		{"✅", "Action Items", m.ActionItems},
		{"⚖️", "Decisions Made", m.Decisions},
	}

	var body strings.Builder
	for _, s := range sections {
		if strings.TrimSpace(s.body) == "" {
			continue
		}
		var rendered bytes.Buffer
		if err := minutesMarkdown.Convert([]byte(s.body), &rendered); err != nil {
			return "", fmt.Errorf("failed to render %s section: %w", s.title, err)
		}
		body.WriteString(fmt.Sprintf(`<div class="section"><h2>%s %s</h2><div class="section-content">%s</div></div>`,
			s.icon, s.title, rendered.String()))
		body.WriteString("\n")
	}

	attendees := "None"
	if len(attendeeNames) > 0 {
		attendees = html.EscapeString(strings.Join(attendeeNames, ", "))
	}
	project := "—"
	if projectName != "" {
		project = html.EscapeString(projectName)
	}

	doc := fmt.Sprintf(`<!DOCTYPE html><html><head><title>%[1]s</title><style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', system-ui, -apple-system, sans-serif; padding: 40px; color: #172b4d; line-height: 1.6; }
.header { border-bottom: 3px solid #0052cc; padding-bottom: 16px; margin-bottom: 24px; }
.header h1 { font-size: 24px; color: #0052cc; margin-bottom: 4px; }
.meta { display: flex; gap: 24px; font-size: 13px; color: #6b778c; margin-top: 8px; }
.meta strong { color: #172b4d; }
.section { margin-bottom: 20px; }
.section h2 { font-size: 15px; font-weight: 700; color: #0052cc; text-transform: uppercase; letter-spacing: 0.5px; border-bottom: 1px solid #dfe1e6; padding-bottom: 6px; margin-bottom: 10px; }
.section-content { font-size: 14px; }
.section-content table { border-collapse: collapse; margin: 8px 0; }
.section-content th, .section-content td { border: 1px solid #dfe1e6; padding: 6px 10px; text-align: left; }
.footer { margin-top: 32px; padding-top: 12px; border-top: 1px solid #dfe1e6; font-size: 11px; color: #97a0af; text-align: center; }
@media print { body { padding: 20px; } }
</style></head><body>
<div class="header">
<h1>📋 %[1]s</h1>
<div class="meta"><span><strong>Date:</strong> %[2]s</span><span><strong>Project:</strong> %[3]s</span></div>
<div class="meta"><span><strong>Attendees:</strong> %[4]s</span></div>
</div>
%[5]s<div class="footer">Generated from ScrumCMD • %[6]s</div>
</body></html>`,
		html.EscapeString(m.Title), html.EscapeString(m.Date), project, attendees,
		body.String(), now.Format("2006-01-02"))

	return doc, nil
}
