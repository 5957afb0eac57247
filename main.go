package main

import (
	"encoding/json"
	"fmt"
	"os"

	"giflabel/internal/generate"
	"giflabel/internal/model"
	"giflabel/internal/session"
	"giflabel/internal/tui"
	"giflabel/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "axt5780",
		Repository: "giflabel",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		return // Silently fail
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/axt5780/giflabel/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: giflabel [options]\n\n")
		fmt.Fprintf(os.Stderr, "giflabel labels the angle of motion in animated GIFs.\n")
		fmt.Fprintf(os.Stderr, "The default mode is an interactive labeling session: the GIF plays in\n")
		fmt.Fprintf(os.Stderr, "a canvas and the mouse picks the angle. Labels persist to a CSV file.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  giflabel                         # Label GIFs in ./gifs\n")
		fmt.Fprintf(os.Stderr, "  giflabel -d clips -s clips.csv   # Custom directory and store\n")
		fmt.Fprintf(os.Stderr, "  giflabel --report                # Print labeling progress\n")
		fmt.Fprintf(os.Stderr, "  giflabel --generate -m points.json -f frames -n CRG\n")
		fmt.Fprintf(os.Stderr, "                                   # Build the GIFs to label\n")
	}

	dirFlag := pflag.StringP("dir", "d", "gifs", "Directory containing the GIF files")
	storeFlag := pflag.StringP("store", "s", "labels.csv", "Label store CSV file")
	reportFlag := pflag.BoolP("report", "r", false, "Print a labeling progress report (CLI mode)")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	verboseFlag := pflag.BoolP("verbose", "v", false, "List every item in the report, not just unlabeled ones")
	jsonFlag := pflag.BoolP("json", "j", false, "Output items and labels as JSON")
	webFlag := pflag.BoolP("web", "w", false, "Start read-only Web Mode on http://localhost:8080")
	portFlag := pflag.String("port", "8080", "Port for Web Mode")
	debugFlag := pflag.String("debug", "", "Write TUI debug log to the given file")

	generateFlag := pflag.BoolP("generate", "g", false, "Generate wedge GIFs from still frames and metadata")
	metadataFlag := pflag.StringP("metadata", "m", "merged_points.json", "Metadata JSON for --generate")
	framesFlag := pflag.StringP("frames", "f", "frames", "Still-frame directory for --generate")
	outDirFlag := pflag.String("out", "gifs", "Output directory for --generate")
	nameFlag := pflag.StringP("name", "n", "sequence", "Output name prefix for --generate")
	radiusFlag := pflag.Int("radius", 128, "Wedge radius in pixels for --generate")
	fpsFlag := pflag.Int("fps", 24, "Output frame rate for --generate")
	workersFlag := pflag.Int("workers", 4, "Worker pool size for --generate")

	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for latest version")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("giflabel version %s\n", model.Version)
		return
	}

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	if *generateFlag {
		runGenerateMode(*metadataFlag, *framesFlag, *outDirFlag, *nameFlag, *radiusFlag, *fpsFlag, *workersFlag)
		return
	}

	if *webFlag {
		web.StartServer(web.Server{Dir: *dirFlag, StorePath: *storeFlag, Ext: ".gif"}, *portFlag)
		return
	}

	if *reportFlag {
		runReportMode(*dirFlag, *storeFlag, *outputFlag, *verboseFlag)
		return
	}

	if *jsonFlag {
		runJsonMode(*dirFlag, *storeFlag)
		return
	}

	// Default: TUI
	runTuiMode(*dirFlag, *storeFlag, *debugFlag)
}

func startSession(dir, storePath string) *session.Session {
	sess, err := session.Start(dir, storePath, ".gif")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return sess
}

func runGenerateMode(metadata, frames, outDir, name string, radius, fps, workers int) {
	err := generate.Run(generate.Config{
		MetadataPath: metadata,
		FramesDir:    frames,
		OutDir:       outDir,
		Name:         name,
		Radius:       radius,
		FPS:          fps,
		Workers:      workers,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReportMode(dir, storePath, outputFile string, verbose bool) {
	sess := startSession(dir, storePath)
	report := model.GenerateReport(sess.Summary(), verbose)

	if outputFile != "" {
		err := os.WriteFile(outputFile, []byte(report), 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report to %s: %v\n", outputFile, err)
			os.Exit(1)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
	} else {
		fmt.Println(report)
	}
}

func runJsonMode(dir, storePath string) {
	sess := startSession(dir, storePath)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(sess.Summary())
}

func runTuiMode(dir, storePath, debugFile string) {
	if debugFile != "" {
		f, err := tea.LogToFile(debugFile, "giflabel")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	sess := startSession(dir, storePath)

	m := tui.InitialModel(sess)
	p := tea.NewProgram(&m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
}
