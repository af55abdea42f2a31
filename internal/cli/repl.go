// Package cli implements the interactive shell.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/aretw0/lifeos"
	"github.com/aretw0/lifeos/internal/presentation/tui"
	"github.com/aretw0/lifeos/pkg/domain"
)

// REPL is the interactive command loop over a running system.
type REPL struct {
	sys    *lifeos.System
	render func(string) (string, error)
}

// NewREPL builds a REPL around the system. Markdown output is rendered
// through the terminal renderer.
func NewREPL(sys *lifeos.System) *REPL {
	return &REPL{
		sys:    sys,
		render: tui.NewRenderer(),
	}
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("chat"),
		readline.PcItem("evolve"),
		readline.PcItem("frontier"),
		readline.PcItem("worldview"),
		readline.PcItem("daily"),
		readline.PcItem("wings"),
		readline.PcItem("docs"),
		readline.PcItem("agents"),
		readline.PcItem("protocols"),
		readline.PcItem("protocol"),
		readline.PcItem("task"),
		readline.PcItem("status"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
}

// Run starts the interactive loop and blocks until the user exits or
// the context is cancelled.
func (r *REPL) Run(ctx context.Context) error {
	tui.PrintBanner(lifeos.Version)
	fmt.Println("Type 'help' for commands, 'exit' to quit.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "life_os> ",
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start shell: %w", err)
	}
	defer rl.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		out, quit := r.Execute(ctx, line)
		if out != "" {
			fmt.Println(out)
		}
		if quit {
			return nil
		}
	}
}

// Execute dispatches a single command line and returns the textual
// output plus whether the loop should terminate.
func (r *REPL) Execute(ctx context.Context, line string) (string, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}

	fields := strings.Fields(line)
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "exit", "quit":
		return "Shutting down. Stay antifragile.", true
	case "help":
		return helpText, false
	case "chat":
		return r.chat(ctx, args), false
	case "evolve":
		return r.evolve(ctx, args), false
	case "frontier":
		return r.frontier(ctx), false
	case "worldview":
		return r.worldview(ctx), false
	case "daily":
		return r.daily(ctx), false
	case "wings":
		return r.wings(ctx), false
	case "docs":
		return r.docs(ctx, args), false
	case "agents":
		return r.agents(), false
	case "protocols":
		return r.protocols(), false
	case "protocol":
		return r.protocol(ctx, args), false
	case "task":
		return r.task(args), false
	case "status":
		return r.status(), false
	default:
		return fmt.Sprintf("Unknown command %q. Type 'help' for the command list.", cmd), false
	}
}

const helpText = `Commands:
  chat <agent> <message>   Ask an agent a question
  evolve <doc> | <insight> Add an insight to a living document
  frontier                 Run a frontier scan
  worldview                Show the worldview framework document
  daily                    Run the full daily routine
  wings                    Run all wing monitoring cycles
  docs [name]              List documents, or show one
  agents                   List agents and their status
  protocols                List registered protocols
  protocol <name>          Execute a protocol
  task <description>       Run a quick go/no-go check on a task idea
  status                   System health snapshot
  exit                     Quit`

func (r *REPL) chat(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return "Usage: chat <agent> <message>"
	}

	name, ok := r.matchAgent(args[0])
	if !ok {
		return fmt.Sprintf("No agent matches %q. Known agents: %s",
			args[0], strings.Join(r.sys.Agents().Factory().Names(), ", "))
	}

	agent, err := r.sys.Agents().Factory().Get(name)
	if err != nil {
		return err.Error()
	}

	resp := agent.Process(ctx, strings.Join(args[1:], " "), domain.ExecContext{})
	return formatJSON(resp)
}

// evolve accepts "evolve <doc words> | <insight words>" with a pipe
// separating the document name from the insight, falling back to
// treating the first word as the document when no pipe is present.
func (r *REPL) evolve(ctx context.Context, args []string) string {
	if len(args) < 2 {
		return "Usage: evolve <doc> | <insight>"
	}

	rest := strings.Join(args, " ")
	var docPart, insight string
	if before, after, found := strings.Cut(rest, "|"); found {
		docPart = strings.TrimSpace(before)
		insight = strings.TrimSpace(after)
	} else {
		docPart = args[0]
		insight = strings.Join(args[1:], " ")
	}
	if insight == "" {
		return "Usage: evolve <doc> | <insight>"
	}

	name, ok := r.matchDocument(ctx, docPart)
	if !ok {
		return fmt.Sprintf("No document matches %q.", docPart)
	}

	doc, err := r.sys.Documents().AddInsight(ctx, name, insight, "manual_input")
	if err != nil {
		return fmt.Sprintf("Evolution failed: %v", err)
	}
	return fmt.Sprintf("Evolved %q to version %d.", doc.Name, doc.Version)
}

func (r *REPL) frontier(ctx context.Context) string {
	report := r.sys.Intel().Detector().Scan(ctx)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Frontier scan %s\n", report.ScanDate)
	fmt.Fprintf(&sb, "Significant changes: %d\n", len(report.Significant))
	for _, change := range report.Significant {
		fmt.Fprintf(&sb, "  [%s] %s\n", change.Area, change.Description)
	}
	if len(report.Recommendations) > 0 {
		sb.WriteString("Recommendations:\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&sb, "  - %s\n", rec)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *REPL) worldview(ctx context.Context) string {
	doc, err := r.sys.Documents().Get(ctx, "Worldview Framework")
	if err != nil {
		return fmt.Sprintf("Worldview unavailable: %v", err)
	}
	return r.renderDocument(doc)
}

func (r *REPL) daily(ctx context.Context) string {
	result := r.sys.DailyRoutine(ctx)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Daily routine for %s\n", result.Date)
	if result.Briefing != nil {
		fmt.Fprintf(&sb, "  Opportunities: %d\n", len(result.Briefing.Opportunities))
		fmt.Fprintf(&sb, "  Fragility warnings: %d\n", len(result.Briefing.Fragilities))
	}
	if result.Strategy != nil {
		fmt.Fprintf(&sb, "  Strategic priorities: %d\n", len(result.Strategy.Priorities))
	}
	if result.Execution != nil {
		fmt.Fprintf(&sb, "  Tasks planned: %d\n", result.Execution.TotalTasks)
	}
	fmt.Fprintf(&sb, "  Document evolutions: %d\n", len(result.Evolutions))
	return strings.TrimRight(sb.String(), "\n")
}

func (r *REPL) wings(ctx context.Context) string {
	reports := r.sys.CheckWings(ctx)

	var sb strings.Builder
	for _, name := range r.sys.Wings().Names() {
		report, ok := reports[name]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "%s: %d sections, %d actions\n",
			name, len(report.Sections), len(report.Actions))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *REPL) docs(ctx context.Context, args []string) string {
	if len(args) > 0 {
		name, ok := r.matchDocument(ctx, strings.Join(args, " "))
		if !ok {
			return fmt.Sprintf("No document matches %q.", strings.Join(args, " "))
		}
		doc, err := r.sys.Documents().Get(ctx, name)
		if err != nil {
			return err.Error()
		}
		return r.renderDocument(doc)
	}

	names, err := r.sys.Documents().List(ctx)
	if err != nil {
		return fmt.Sprintf("Listing failed: %v", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d documents:\n", len(names))
	for _, name := range names {
		if doc, err := r.sys.Documents().Get(ctx, name); err == nil {
			fmt.Fprintf(&sb, "  %s (v%d, %s)\n", doc.Name, doc.Version, doc.Type)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *REPL) agents() string {
	factory := r.sys.Agents().Factory()

	var sb strings.Builder
	for _, name := range factory.Names() {
		agent, err := factory.Get(name)
		if err != nil {
			continue
		}
		status := agent.Status()
		fmt.Fprintf(&sb, "%s (%s) tasks=%d connected=%t\n",
			status.Name, status.Role, status.TasksCompleted, status.Connected)
	}
	if sb.Len() == 0 {
		return "No agents registered."
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *REPL) protocols() string {
	names := r.sys.Protocols().List()
	if len(names) == 0 {
		return "No protocols registered."
	}
	return "Protocols: " + strings.Join(names, ", ")
}

func (r *REPL) protocol(ctx context.Context, args []string) string {
	if len(args) < 1 {
		return "Usage: protocol <name>"
	}

	name := args[0]
	if _, err := r.sys.Protocols().Get(name); err != nil {
		return fmt.Sprintf("Unknown protocol %q. Registered: %s",
			name, strings.Join(r.sys.Protocols().List(), ", "))
	}

	result := r.sys.Protocols().Execute(ctx, name, domain.ExecContext{
		IntelAvailable: true,
		ClearObjective: true,
	})
	return formatJSON(result)
}

// task runs a quick evaluation of an ad hoc task idea. High/low
// prefixes adjust the assumed priority.
func (r *REPL) task(args []string) string {
	if len(args) == 0 {
		return "Usage: task <description>"
	}

	spec := domain.TaskSpec{
		Name:     strings.Join(args, " "),
		Priority: "medium",
	}
	switch strings.ToLower(args[0]) {
	case "high", "low":
		spec.Priority = strings.ToLower(args[0])
		spec.Name = strings.Join(args[1:], " ")
	}

	verdict := r.sys.Checker().Evaluate(spec)
	decision := "NO-GO"
	if verdict.Go {
		decision = "GO"
	}
	out := fmt.Sprintf("%s (score %.2f)", decision, verdict.Score)
	if verdict.Reason != "" {
		out += ": " + verdict.Reason
	}
	return out
}

func (r *REPL) status() string {
	return formatJSON(r.sys.Health())
}

// matchAgent resolves a partial, case-insensitive agent name.
func (r *REPL) matchAgent(partial string) (string, bool) {
	needle := strings.ToLower(partial)
	for _, name := range r.sys.Agents().Factory().Names() {
		if strings.Contains(strings.ToLower(name), needle) {
			return name, true
		}
	}
	return "", false
}

// matchDocument resolves a partial, case-insensitive document name.
func (r *REPL) matchDocument(ctx context.Context, partial string) (string, bool) {
	names, err := r.sys.Documents().List(ctx)
	if err != nil {
		return "", false
	}
	needle := strings.ToLower(partial)
	for _, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			return name, true
		}
	}
	return "", false
}

func (r *REPL) renderDocument(doc *domain.Document) string {
	header := fmt.Sprintf("# %s (v%d)\n\n", doc.Name, doc.Version)
	if rendered, err := r.render(header + doc.Content); err == nil {
		return rendered
	}
	return header + doc.Content
}

func formatJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
