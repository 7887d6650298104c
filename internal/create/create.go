package create

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/osfs"

	"github.com/expresskit/create-express/internal/branding"
	"github.com/expresskit/create-express/internal/catalog"
	"github.com/expresskit/create-express/internal/conflict"
	"github.com/expresskit/create-express/internal/logger"
	"github.com/expresskit/create-express/internal/naming"
	"github.com/expresskit/create-express/internal/pkgmanager"
	"github.com/expresskit/create-express/internal/prompt"
	"github.com/expresskit/create-express/internal/scaffold"
)

// State is a step of a run.
type State int

const (
	// StateResolveTarget settles the target directory, prompting if none was given.
	StateResolveTarget State = iota
	// StateResolveConflict decides what happens to existing files in the target.
	StateResolveConflict
	// StateResolvePackageName settles a valid package.json name.
	StateResolvePackageName
	// StateResolveTemplate settles a catalog template.
	StateResolveTemplate
	// StateMaterialize writes the template into the target.
	StateMaterialize
	// StateAdvise prints the next commands to run.
	StateAdvise
	// StateDone is reached after a successful run.
	StateDone
	// StateCancelled is reached when the user backs out at any step.
	StateCancelled
)

var stateNames = [...]string{
	"resolve-target",
	"resolve-conflict",
	"resolve-package-name",
	"resolve-template",
	"materialize",
	"advise",
	"done",
	"cancelled",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const cancelMessage = "Operation cancelled"

// UI is what a run needs from the terminal: questions plus progress output.
type UI interface {
	prompt.Prompter
	Step(msg string)
	Outro(msg string)
	Cancelled(msg string)
}

// Options are the inputs taken from the command line and environment.
type Options struct {
	Dir       string // positional directory argument, may be empty
	Template  string // --template value, may be empty or unknown
	Overwrite bool   // --overwrite
	Cwd       string // defaults to the process working directory
	UserAgent string // npm_config_user_agent
}

// Outcome describes how a run ended.
type Outcome struct {
	State        State
	Root         string
	PackageName  string
	Template     string
	Files        []string
	Warnings     []string
	Instructions []string
}

// Runner executes runs against a UI.
type Runner struct {
	UI  UI
	Log *logger.Logger
}

// Run performs one scaffolding run.
func (r *Runner) Run(opts Options) (*Outcome, error) {
	log := r.Log
	if log == nil {
		log = logger.Nop()
	}

	cwd := opts.Cwd
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		cwd = wd
	}
	cwd = filepath.Clean(cwd)

	out := &Outcome{State: StateResolveTarget}

	target, err := r.resolveTarget(opts.Dir)
	if err != nil || target.Cancelled {
		return r.finish(out, err)
	}
	out.Root = absolute(cwd, target.Value)
	log.Debugf("target directory %s", out.Root)

	out.State = StateResolveConflict
	disposition, err := conflict.Resolve(out.Root, target.Value, opts.Overwrite, r.UI)
	if err != nil || disposition.Cancelled {
		return r.finish(out, err)
	}
	switch disposition.Value {
	case conflict.Abort:
		return r.finish(out, nil)
	case conflict.Purge:
		log.Debugf("removing existing files in %s", out.Root)
		if err := conflict.EmptyDir(out.Root); err != nil {
			return r.finish(out, err)
		}
	}

	out.State = StateResolvePackageName
	pkgName, err := r.resolvePackageName(filepath.Base(out.Root))
	if err != nil || pkgName.Cancelled {
		return r.finish(out, err)
	}
	out.PackageName = pkgName.Value

	out.State = StateResolveTemplate
	tmpl, err := r.resolveTemplate(opts.Template)
	if err != nil || tmpl.Cancelled {
		return r.finish(out, err)
	}
	out.Template = tmpl.Value

	out.State = StateMaterialize
	result, err := r.materialize(out.Root, out.Template, out.PackageName)
	if result != nil {
		out.Files = result.Files
		out.Warnings = result.Warnings
	}
	if err != nil {
		return r.finish(out, err)
	}
	for _, w := range out.Warnings {
		log.Warnf("package.json: %s", w)
	}
	for _, f := range out.Files {
		log.Tracef("wrote %s", f)
	}
	log.Debugf("wrote %d files", len(out.Files))

	out.State = StateAdvise
	info := pkgmanager.Detect(opts.UserAgent)
	log.Debugf("package manager: %s", info)
	rel, err := filepath.Rel(cwd, out.Root)
	if err != nil {
		rel = out.Root
	}
	out.Instructions = pkgmanager.Instructions(info, rel, out.Root != cwd)
	r.UI.Outro(pkgmanager.DoneMessage(out.Instructions))

	out.State = StateDone
	return out, nil
}

// finish ends a run early. Without an error the run is cancelled.
func (r *Runner) finish(out *Outcome, err error) (*Outcome, error) {
	if err != nil {
		return out, fmt.Errorf("%s: %w", out.State, err)
	}
	r.UI.Cancelled(cancelMessage)
	out.State = StateCancelled
	return out, nil
}

func (r *Runner) resolveTarget(arg string) (prompt.Result[string], error) {
	if spec := naming.NewTargetSpec(arg); spec.Valid() {
		return prompt.Answer(spec.Path), nil
	}

	res, err := r.UI.Text(prompt.TextRequest{
		Message: "Project name:",
		Default: branding.DefaultProject(),
		Validate: func(v string) string {
			if v == "" || naming.NewTargetSpec(v).Valid() {
				return ""
			}
			return "Invalid project name"
		},
	})
	if err != nil || res.Cancelled {
		return res, err
	}

	path := naming.NormalizeDirectory(res.Value)
	if path == "" {
		path = branding.DefaultProject()
	}
	return prompt.Answer(path), nil
}

func (r *Runner) resolvePackageName(candidate string) (prompt.Result[string], error) {
	if naming.IsValidPackageName(candidate) {
		return prompt.Answer(candidate), nil
	}

	return r.UI.Text(prompt.TextRequest{
		Message: "Package name:",
		Default: naming.ToPackageName(candidate),
		Validate: func(v string) string {
			if naming.IsValidPackageName(v) {
				return ""
			}
			return "Invalid package.json name"
		},
	})
}

func (r *Runner) resolveTemplate(requested string) (prompt.Result[string], error) {
	if catalog.IsKnown(requested) {
		return prompt.Answer(requested), nil
	}

	msg := "Select a template:"
	if requested != "" {
		msg = fmt.Sprintf(`"%s" isn't a valid template. Please choose from below: `, requested)
	}

	req := prompt.SelectRequest{Message: msg}
	for _, t := range catalog.List() {
		req.Options = append(req.Options, prompt.Option{
			Label: t.Accent.Paint(t.ID) + "  " + t.Label,
			Value: t.ID,
		})
	}
	return r.UI.Select(req)
}

func (r *Runner) materialize(root, templateID, packageName string) (*scaffold.Result, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", root, err)
	}

	r.UI.Step(fmt.Sprintf("Scaffolding project in %s...", root))

	fsys, err := scaffold.TemplateFS(templateID)
	if err != nil {
		return nil, err
	}
	return scaffold.Materialize(fsys, osfs.New(root), packageName)
}

func absolute(cwd, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(cwd, target)
}
