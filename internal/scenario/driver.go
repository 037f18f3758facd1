package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/NoobyGains/claude-pulse/internal/errors"
	"github.com/NoobyGains/claude-pulse/internal/logger"
	"github.com/NoobyGains/claude-pulse/internal/render"
)

// ManifestName is the ordered frame listing written after each run.
const ManifestName = "manifest.json"

// Family describes one frame sequence: which descriptors to build, which
// composer to run them through, and how the outputs are named.
type Family struct {
	Name       string // CLI-facing family name
	FilePrefix string // frame file prefix, e.g. "frame_"
	OutputGIF  string // target animation path (produced by external tooling)
	Frames     func() []render.Frame
	Compose    func(render.Frame) (string, error)
}

// Families returns the three generation runs in their fixed order.
func Families() []Family {
	return []Family{
		{
			Name:       "demo",
			FilePrefix: "frame_",
			OutputGIF:  filepath.Join("assets", "demo.gif"),
			Frames:     DemoFrames,
			Compose:    render.ComposeMockup,
		},
		{
			Name:       "update",
			FilePrefix: "update_",
			OutputGIF:  filepath.Join("assets", "update.gif"),
			Frames:     UpdateFrames,
			Compose:    render.ComposeStatusLine,
		},
		{
			Name:       "claude-update",
			FilePrefix: "claude_update_",
			OutputGIF:  filepath.Join("assets", "claude-update.gif"),
			Frames:     ClaudeUpdateFrames,
			Compose:    render.ComposeStatusLine,
		},
	}
}

// FamilyByName finds a family by its CLI name.
func FamilyByName(name string) (Family, error) {
	for _, fam := range Families() {
		if fam.Name == name {
			return fam, nil
		}
	}
	return Family{}, errors.New(errors.ErrConfig,
		fmt.Sprintf("Unknown frame family: %q", name),
		"Valid families: demo, update, claude-update")
}

// Result summarizes one completed generation run.
type Result struct {
	Family     string   `json:"family"`
	Dir        string   `json:"dir"`
	Manifest   string   `json:"manifest"`
	FrameCount int      `json:"frame_count"`
	OutputGIF  string   `json:"output_gif"`
	Paths      []string `json:"-"`
}

// Run composes every frame of the family, writes each document into a
// fresh scratch directory under root (the system temp dir when root is
// empty), and writes the manifest once after all frames succeed. Any
// composition or write error aborts the run before the manifest exists.
func Run(fam Family, root string, log logger.Logger) (*Result, error) {
	dir, err := os.MkdirTemp(root, "pulsegif-"+fam.Name+"-")
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrOutput,
			"Failed to create scratch directory",
			"Check temp directory permissions, or pass --out to choose another location")
	}
	if dir, err = filepath.Abs(dir); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrOutput,
			"Failed to resolve scratch directory path", "")
	}

	frames := fam.Frames()
	paths := make([]string, 0, len(frames))

	for i, f := range frames {
		doc, err := fam.Compose(f)
		if err != nil {
			return nil, err
		}

		path := filepath.Join(dir, fmt.Sprintf("%s%03d.html", fam.FilePrefix, i))
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrOutput,
				fmt.Sprintf("Failed to write frame %d of family %s", i, fam.Name),
				"Check disk space and directory permissions")
		}
		paths = append(paths, path)
		log.Debug("wrote %s (%s, frame %d/%d)", path, f.Theme, f.Index, f.Total)
	}

	manifestPath := filepath.Join(dir, ManifestName)
	data, err := json.Marshal(paths)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrOutput,
			"Failed to encode manifest", "")
	}
	if err := os.WriteFile(manifestPath, data, 0o644); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrOutput,
			"Failed to write manifest",
			"Check disk space and directory permissions")
	}

	log.Info("generated %d %s frames in %s", len(paths), fam.Name, dir)

	return &Result{
		Family:     fam.Name,
		Dir:        dir,
		Manifest:   manifestPath,
		FrameCount: len(paths),
		OutputGIF:  fam.OutputGIF,
		Paths:      paths,
	}, nil
}

// RunAll executes every family in order and returns one result per run.
func RunAll(root string, log logger.Logger) ([]*Result, error) {
	families := Families()
	results := make([]*Result, 0, len(families))
	for _, fam := range families {
		res, err := Run(fam, root, log)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}
