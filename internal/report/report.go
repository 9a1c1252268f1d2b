package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"strings"
	"time"

	"github.com/Serdar715/flareload/internal/config"
)

// Supported output formats
const (
	FormatJSON     = "json"
	FormatHTML     = "html"
	FormatMarkdown = "markdown"
)

// Reporter writes a run result to disk in one format
type Reporter struct {
	format string
}

// New creates a new reporter with the specified format. Unknown formats fall back to JSON.
func New(format string) *Reporter {
	format = strings.ToLower(format)
	if format == "md" {
		format = FormatMarkdown
	}
	return &Reporter{format: format}
}

// Format returns the normalized format name
func (r *Reporter) Format() string {
	return r.format
}

// Generate creates a report in the specified format
func (r *Reporter) Generate(result *config.ScanResult, outputPath string) error {
	if result == nil {
		return fmt.Errorf("no result to report")
	}

	switch r.format {
	case FormatHTML:
		return r.generateHTML(result, outputPath)
	case FormatMarkdown:
		return os.WriteFile(outputPath, []byte(Markdown(result)), 0644)
	default:
		return r.generateJSON(result, outputPath)
	}
}

// generateJSON creates a JSON report
func (r *Reporter) generateJSON(result *config.ScanResult, outputPath string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return os.WriteFile(outputPath, data, 0644)
}

// Markdown renders the result as a markdown document
func Markdown(result *config.ScanResult) string {
	var b strings.Builder

	b.WriteString("# FlareLoad Report\n\n")
	fmt.Fprintf(&b, "**Run:** %s\n", result.RunID)
	fmt.Fprintf(&b, "**Target:** %s\n", result.TargetURL)
	fmt.Fprintf(&b, "**Parameter:** `%s`\n", result.Parameter)
	fmt.Fprintf(&b, "**Date:** %s\n", result.ScanStartTime.Format(time.RFC1123))
	fmt.Fprintf(&b, "**Duration:** %s\n", result.ScanDuration)
	fmt.Fprintf(&b, "**Requests:** %d\n", result.Requests)
	if result.Context != "" {
		fmt.Fprintf(&b, "**Reflection Context:** %s\n", result.Context)
	}
	if result.WAFDetected != "" {
		fmt.Fprintf(&b, "**WAF Detected:** %s\n", result.WAFDetected)
	}

	b.WriteString("\n## Resolved Expressions\n\n")
	fmt.Fprintf(&b, "- **Event handler:** `%s`\n", result.EventHandler)
	fmt.Fprintf(&b, "- **Object accessor:** `%s`\n", result.ObjectAccessor)
	fmt.Fprintf(&b, "- **Property accessor:** `%s`\n", result.PropertyAccessor)

	b.WriteString("\n## Outcome\n\n")
	if result.AbortedPhase != "" {
		fmt.Fprintf(&b, "_Aborted at %s: %s._\n", result.AbortedPhase, result.AbortReason)
	}
	if result.Vulnerable {
		fmt.Fprintf(&b, "- **Payload:**\n```\n%s\n```\n", result.Payload)
		fmt.Fprintf(&b, "- **URL:** `%s`\n", result.PayloadURL)
	}
	if result.FlagFound {
		fmt.Fprintf(&b, "- **Flag:** `%s`\n", result.Flag)
	}
	if !result.Vulnerable && result.AbortedPhase == "" {
		b.WriteString("_No payload assembled._\n")
	}

	if result.ErrorCount > 0 {
		fmt.Fprintf(&b, "\n## Transport Errors (%d)\n\n", result.ErrorCount)
		for _, e := range result.Errors {
			fmt.Fprintf(&b, "- %s\n", e)
		}
	}

	return b.String()
}

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>FlareLoad Report - {{.TargetURL}}</title>
    <style>
        :root {
            --bg-primary: #0f0f1a;
            --bg-card: #16213e;
            --accent-primary: #00d4ff;
            --text-primary: #ffffff;
            --text-secondary: #a0a0b0;
            --success: #00ff88;
            --warning: #ffaa00;
            --danger: #ff4444;
        }
        body { font-family: -apple-system, BlinkMacSystemFont, sans-serif; background: var(--bg-primary); color: var(--text-primary); }
        .container { max-width: 1100px; margin: 0 auto; padding: 40px 20px; }
        .card { background: var(--bg-card); border-radius: 12px; padding: 24px; margin-bottom: 24px; }
        .label { color: var(--text-secondary); width: 200px; display: inline-block; }
        .mono { font-family: monospace; color: var(--accent-primary); word-break: break-all; }
        .danger { color: var(--danger); }
        .warning { color: var(--warning); }
        .success { color: var(--success); }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <h1>FlareLoad Report</h1>
            <div><span class="label">Target</span><span class="mono">{{.TargetURL}}</span></div>
            <div><span class="label">Run</span>{{.RunID}}</div>
            <div><span class="label">Started</span>{{.ScanStartTime.Format "2006-01-02 15:04:05"}}</div>
            <div><span class="label">Duration</span>{{.ScanDuration}}</div>
            <div><span class="label">Requests</span>{{.Requests}}</div>
            {{if .Context}}<div><span class="label">Reflection context</span>{{.Context}}</div>{{end}}
            {{if .WAFDetected}}<div><span class="label">WAF</span><span class="warning">{{.WAFDetected}}</span></div>{{end}}
        </div>

        <div class="card">
            <h2>Resolved Expressions</h2>
            <div><span class="label">Event handler</span><span class="mono">{{.EventHandler}}</span></div>
            <div><span class="label">Object accessor</span><span class="mono">{{.ObjectAccessor}}</span></div>
            <div><span class="label">Property accessor</span><span class="mono">{{.PropertyAccessor}}</span></div>
        </div>

        <div class="card">
            <h2>Outcome</h2>
            {{if .AbortedPhase}}<p class="warning">Aborted at {{.AbortedPhase}}: {{.AbortReason}}</p>{{end}}
            {{if .Vulnerable}}
            <p class="danger">Reflected XSS confirmed</p>
            <div><span class="label">Payload</span><span class="mono">{{.Payload}}</span></div>
            <div><span class="label">URL</span><span class="mono">{{.PayloadURL}}</span></div>
            {{else}}
            <p class="success">No payload assembled</p>
            {{end}}
            {{if .FlagFound}}<div><span class="label">Flag</span><span class="mono danger">{{.Flag}}</span></div>{{end}}
        </div>

        {{if gt .ErrorCount 0}}
        <div class="card">
            <h2>Transport Errors ({{.ErrorCount}})</h2>
            <ul>{{range .Errors}}<li>{{.}}</li>{{end}}</ul>
        </div>
        {{end}}

        <p class="label">Generated on {{now.Format "2006-01-02 15:04:05 MST"}}</p>
    </div>
</body>
</html>`

// generateHTML creates an HTML report. Payloads are escaped by html/template.
func (r *Reporter) generateHTML(result *config.ScanResult, outputPath string) error {
	funcMap := template.FuncMap{
		"now": func() time.Time {
			return time.Now()
		},
	}

	t, err := template.New("report").Funcs(funcMap).Parse(htmlTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return t.Execute(file, result)
}
