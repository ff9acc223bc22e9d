package assembly

import (
	"fmt"
	"strings"

	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
	"github.com/specforge-io/specforge-backend/internal/blueprint/integrity"
)

// BuildPrompt renders a spec into the natural-language instruction sent to
// the text-generation collaborator. Integrity findings are included as
// context only; no rule logic lives here.
func BuildPrompt(spec *domain.Spec, report integrity.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Write a complete project document for %q.\n\n", spec.Meta.ProjectName)
	fmt.Fprintf(&b, "Summary: %s\n\n", spec.Meta.Summary)

	fmt.Fprintf(&b, "Stack: %s", spec.Stack.Type)
	if spec.Stack.Architecture != "" {
		fmt.Fprintf(&b, " (%s architecture)", spec.Stack.Architecture)
	}
	b.WriteString("\n")
	if fe := spec.Stack.Frontend; fe != nil {
		fmt.Fprintf(&b, "Frontend: %s / %s", fe.Framework, fe.Language)
		if len(fe.Libraries) > 0 {
			fmt.Fprintf(&b, " with %s", strings.Join(fe.Libraries, ", "))
		}
		b.WriteString("\n")
	}
	if be := spec.Stack.Backend; be != nil {
		fmt.Fprintf(&b, "Backend: %s / %s", be.Framework, be.Language)
		if len(be.Libraries) > 0 {
			fmt.Fprintf(&b, " with %s", strings.Join(be.Libraries, ", "))
		}
		b.WriteString("\n")
	}
	if db := spec.Stack.Database; db != nil {
		fmt.Fprintf(&b, "Database: %s", db.Type)
		if db.Provider != "" {
			fmt.Fprintf(&b, " on %s", db.Provider)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if spec.Auth.Enabled {
		fmt.Fprintf(&b, "Authentication: enabled (methods: %s; roles: %s)\n\n",
			joinOr(spec.Auth.Methods, "none"), joinOr(spec.Auth.Roles, "none"))
	}

	if len(spec.Entities) > 0 {
		b.WriteString("Entities:\n")
		for _, e := range spec.Entities {
			fmt.Fprintf(&b, "- %s", e.Name)
			if len(e.Fields) > 0 {
				names := make([]string, 0, len(e.Fields))
				for _, f := range e.Fields {
					names = append(names, fmt.Sprintf("%s:%s", f.Name, f.Type))
				}
				fmt.Fprintf(&b, " (%s)", strings.Join(names, ", "))
			}
			for _, r := range e.Relations {
				fmt.Fprintf(&b, "; %s %s", r.Type, r.Target)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(spec.Features) > 0 {
		b.WriteString("Features:\n")
		for _, f := range spec.Features {
			fmt.Fprintf(&b, "- %s: %s\n", f.Name, f.Description)
		}
		b.WriteString("\n")
	}

	if spec.API.Type != domain.APINone && spec.API.Type != "" {
		fmt.Fprintf(&b, "API: %s\n", spec.API.Type)
		for _, ep := range spec.API.Endpoints {
			fmt.Fprintf(&b, "- %s %s\n", strings.Join(ep.Methods, "/"), ep.Path)
		}
		b.WriteString("\n")
	}

	if spec.Deployment.Platform != "" {
		fmt.Fprintf(&b, "Deployment: %s", spec.Deployment.Platform)
		if spec.Deployment.CI.Enabled {
			fmt.Fprintf(&b, " with CI (%s)", spec.Deployment.CI.Provider)
		}
		b.WriteString("\n\n")
	}

	issues := report.AllIssues()
	if len(issues) > 0 {
		b.WriteString("Known issues to address in the document:\n")
		for _, i := range issues {
			fmt.Fprintf(&b, "- [%s] %s\n", i.Severity, i.Message)
		}
		b.WriteString("\n")
	}

	b.WriteString("Structure the document with an overview, architecture, data model, API and setup sections.")
	return b.String()
}

func joinOr(items []string, fallback string) string {
	if len(items) == 0 {
		return fallback
	}
	return strings.Join(items, ", ")
}
