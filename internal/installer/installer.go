package installer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
)

const (
	baseRoot      = "templates/base"
	componentRoot = "templates/components"
)

// Options controls what the installer generates and where.
type Options struct {
	TargetDir       string
	ModulePath      string
	SiteTitle       string
	SiteDescription string
	// ServiceURL is the base URL scaffolded pages use to reach the blog API.
	ServiceURL string
	Theme      string
	// EnableComments toggles the comments feature flag in zeme.yml.
	EnableComments bool
	// Force overwrites files that already exist in the target.
	Force bool
	// SkipDeps skips the `go mod tidy` step after scaffolding.
	SkipDeps bool
	Out      io.Writer
}

// templateData holds the variables passed to every scaffold template.
type templateData struct {
	ModulePath      string
	ProjectName     string
	SiteTitle       string
	SiteDescription string
	ServiceURL      string
	Theme           string
}

func withDefaults(opts Options) Options {
	if opts.TargetDir == "" {
		opts.TargetDir = "."
	}
	if opts.ModulePath == "" {
		opts.ModulePath = DefaultModulePath(opts.TargetDir)
	}
	if opts.SiteTitle == "" {
		opts.SiteTitle = "Zeme Blog"
	}
	if opts.ServiceURL == "" {
		opts.ServiceURL = "http://localhost:8080"
	}
	if opts.Theme == "" {
		opts.Theme = "default"
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	return opts
}

func (o Options) data() templateData {
	return templateData{
		ModulePath:      o.ModulePath,
		ProjectName:     filepath.Base(o.ModulePath),
		SiteTitle:       o.SiteTitle,
		SiteDescription: o.SiteDescription,
		ServiceURL:      o.ServiceURL,
		Theme:           o.Theme,
	}
}

// DefaultModulePath derives a Go module path from the target directory name.
func DefaultModulePath(targetDir string) string {
	name := filepath.Base(targetDir)
	if name == "." || name == string(filepath.Separator) {
		if cwd, err := os.Getwd(); err == nil {
			name = filepath.Base(cwd)
		}
	}
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" || name == "." {
		name = "zeme-blog"
	}
	return name
}

// Components lists the component names available to `zeme add`.
func Components() []string {
	entries, err := fs.ReadDir(Templates, componentRoot)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Install scaffolds a complete project: Go host program, environment file,
// docker-compose stack, the zeme.yml manifest and all components.
func Install(opts Options) error {
	opts = withDefaults(opts)
	data := opts.data()

	if err := os.MkdirAll(opts.TargetDir, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}

	fmt.Fprintf(opts.Out, "Scaffolding Zeme project in %s\n", opts.TargetDir)
	if err := renderTree(baseRoot, opts, data); err != nil {
		return err
	}

	components := Components()
	for _, name := range components {
		if err := renderTree(path(componentRoot, name), opts, data); err != nil {
			return err
		}
	}

	if err := writeManifest(opts, components); err != nil {
		return err
	}

	if !opts.SkipDeps {
		tidy(opts)
	}
	return nil
}

// Init writes only the config artifacts: .env and zeme.yml.
func Init(opts Options) error {
	opts = withDefaults(opts)

	if err := os.MkdirAll(opts.TargetDir, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	if err := renderFile(path(baseRoot, "dotenv.tmpl"), opts, opts.data()); err != nil {
		return err
	}
	return writeManifest(opts, nil)
}

// AddComponent copies a single named component into the target.
func AddComponent(opts Options, name string) error {
	opts = withDefaults(opts)

	available := Components()
	found := false
	for _, c := range available {
		if c == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("unknown component %q (available: %s)", name, strings.Join(available, ", "))
	}

	if err := os.MkdirAll(opts.TargetDir, 0o755); err != nil {
		return fmt.Errorf("create target directory: %w", err)
	}
	return renderTree(path(componentRoot, name), opts, opts.data())
}

// renderTree walks an embedded template directory and renders every file
// into the target, stripping the .tmpl suffix. Existing files are skipped
// unless Force is set.
func renderTree(root string, opts Options, data templateData) error {
	return fs.WalkDir(Templates, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		if d.IsDir() {
			if relPath == "." {
				return nil
			}
			return os.MkdirAll(filepath.Join(opts.TargetDir, relPath), 0o755)
		}
		return renderOne(p, relPath, opts, data)
	})
}

// renderFile renders a single embedded template relative to its own base name.
func renderFile(p string, opts Options, data templateData) error {
	return renderOne(p, filepath.Base(p), opts, data)
}

func renderOne(p, relPath string, opts Options, data templateData) error {
	outPath := filepath.Join(opts.TargetDir, relPath)
	outPath = strings.TrimSuffix(outPath, ".tmpl")

	// Rename dotenv to .env.
	if filepath.Base(outPath) == "dotenv" {
		outPath = filepath.Join(filepath.Dir(outPath), ".env")
	}

	if _, err := os.Stat(outPath); err == nil && !opts.Force {
		fmt.Fprintf(opts.Out, "  skipped %s (exists)\n", outPath)
		return nil
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", outPath, err)
	}

	content, err := Templates.ReadFile(p)
	if err != nil {
		return fmt.Errorf("read %s: %w", p, err)
	}

	tmpl, err := template.New(filepath.Base(p)).Parse(string(content))
	if err != nil {
		return fmt.Errorf("parse template %s: %w", p, err)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("execute template %s: %w", p, err)
	}

	fmt.Fprintf(opts.Out, "  created %s\n", outPath)
	return nil
}

// tidy resolves dependencies in the target. Failures are reported, not retried.
func tidy(opts Options) {
	fmt.Fprintln(opts.Out, "Resolving Go dependencies...")
	cmd := exec.Command("go", "mod", "tidy")
	cmd.Dir = opts.TargetDir
	cmd.Stdout = opts.Out
	cmd.Stderr = opts.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(opts.Out, "Warning: go mod tidy failed: %v\n", err)
		fmt.Fprintf(opts.Out, "Run 'go mod tidy' in %s manually after fixing.\n", opts.TargetDir)
	}
}

// path joins embedded FS paths, which always use forward slashes.
func path(parts ...string) string {
	return strings.Join(parts, "/")
}
