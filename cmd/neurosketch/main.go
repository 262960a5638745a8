package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/neurosketch/internal/classifier"
	"github.com/san-kum/neurosketch/internal/config"
	"github.com/san-kum/neurosketch/internal/export"
	"github.com/san-kum/neurosketch/internal/gui"
	"github.com/san-kum/neurosketch/internal/imaging"
	"github.com/san-kum/neurosketch/internal/metrics"
	"github.com/san-kum/neurosketch/internal/pipeline"
	"github.com/san-kum/neurosketch/internal/storage"
	"github.com/san-kum/neurosketch/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	epochs       int
	learningRate float64
	limit        int
	hidden1      int
	hidden2      int
	evalLimit    int

	outPath string
)

// main is the entry point for the neurosketch CLI; it registers commands and
// flags, launches the drawing GUI when no subcommand is given, and executes
// the root command. It exits with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "neurosketch",
		Short: "hand-drawn digit classifier with a live network visualization",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := loadConfig()
			clf, _ := loadLatestModel(cfg)
			gui.Run(cfg, clf)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", storage.DefaultDir(), "model directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "train a model on mnist and save it",
		RunE:  runTrain,
	}
	trainCmd.Flags().IntVar(&epochs, "epochs", 0, "training epochs")
	trainCmd.Flags().Float64Var(&learningRate, "lr", 0, "learning rate")
	trainCmd.Flags().IntVar(&limit, "limit", 0, "cap on training samples (0 = all)")
	trainCmd.Flags().IntVar(&hidden1, "hidden1", 0, "first hidden layer width")
	trainCmd.Flags().IntVar(&hidden2, "hidden2", 0, "second hidden layer width")
	trainCmd.Flags().IntVar(&evalLimit, "eval-limit", 2000, "held-out samples for evaluation")

	classifyCmd := &cobra.Command{
		Use:   "classify [image]",
		Short: "classify an image file",
		Args:  cobra.ExactArgs(1),
		RunE:  runClassify,
	}

	watchCmd := &cobra.Command{
		Use:   "watch [image]",
		Short: "replay the layer animation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}

	exportCmd := &cobra.Command{
		Use:   "export [image]",
		Short: "render the settled visualization to png or svg",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "snapshot.png", "output file (.png or .svg)")

	normalizeCmd := &cobra.Command{
		Use:   "normalize [image]",
		Short: "dump the 28x28 normalized input",
		Args:  cobra.ExactArgs(1),
		RunE:  runNormalize,
	}
	normalizeCmd.Flags().StringVarP(&outPath, "out", "o", "normalized.png", "output png")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list trained models",
		RunE:  listModels,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(trainCmd, classifyCmd, watchCmd, exportCmd, normalizeCmd, modelsCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg := config.DefaultConfig()
	if preset != "" {
		if p := config.GetPreset(preset); p != nil {
			cfg = p
		} else {
			fmt.Printf("unknown preset: %s (available: %v)\n", preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			fmt.Printf("failed to load config: %v\n", err)
		} else {
			cfg = loaded
		}
	}
	if cfg.ModelDir != "" {
		dataDir = cfg.ModelDir
	}
	return cfg
}

// loadLatestModel returns the most recently trained model, or nil if the
// store is empty.
func loadLatestModel(cfg *config.Config) (*classifier.Classifier, error) {
	st := storage.New(dataDir)
	meta, err := st.Latest()
	if err != nil || meta == nil {
		return nil, err
	}
	return classifier.Load(st.ModelPath(meta.ID), meta.Hidden1, meta.Hidden2)
}

func runTrain(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	h1, h2 := cfg.Network.Hidden1, cfg.Network.Hidden2
	if hidden1 > 0 {
		h1 = hidden1
	}
	if hidden2 > 0 {
		h2 = hidden2
	}

	opt := classifier.TrainOptions{
		Epochs:       cfg.Training.Epochs,
		LearningRate: cfg.Training.LearningRate,
		Limit:        cfg.Training.Limit,
		Verbose:      true,
	}
	if cmd.Flags().Changed("epochs") {
		opt.Epochs = epochs
	}
	if cmd.Flags().Changed("lr") {
		opt.LearningRate = learningRate
	}
	if cmd.Flags().Changed("limit") {
		opt.Limit = limit
	}

	clf := classifier.Build(h1, h2)

	fmt.Printf("training %dx%d mlp on mnist...\n", h1, h2)
	start := time.Now()
	res, err := clf.Train(opt)
	if err != nil {
		return err
	}
	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("samples: %d  epochs: %d  final loss: %.6f\n", res.Samples, res.Epochs, res.FinalLoss)

	acc := metrics.NewAccuracy()
	conf := metrics.NewConfusion(classifier.Classes)
	eval, err := classifier.LoadInferSet(evalLimit)
	if err != nil {
		fmt.Printf("skipping evaluation: %v\n", err)
	} else {
		if err := metrics.Evaluate(clf, eval.Inputs, eval.Labels, acc, conf); err != nil {
			return err
		}
		fmt.Printf("\nheld-out accuracy: %.2f%% (%d samples)\n", acc.Value()*100, eval.Len())
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "DIGIT\tRECALL")
		for d := 0; d < classifier.Classes; d++ {
			fmt.Fprintf(w, "%d\t%.2f%%\n", d, conf.Recall(d)*100)
		}
		w.Flush()
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, modelPath, err := st.Save(storage.ModelMetadata{
		Hidden1:   h1,
		Hidden2:   h2,
		Epochs:    res.Epochs,
		Samples:   res.Samples,
		FinalLoss: res.FinalLoss,
		Accuracy:  acc.Value(),
	})
	if err != nil {
		return err
	}
	if err := clf.Save(modelPath); err != nil {
		return err
	}

	fmt.Printf("\nmodel id: %s\n", id)
	return nil
}

// classifyFile loads an image and runs it through the latest trained model.
func classifyFile(path string) (*pipeline.Result, error) {
	cfg := loadConfig()
	clf, err := loadLatestModel(cfg)
	if err != nil {
		return nil, err
	}
	if clf == nil {
		return nil, fmt.Errorf("no trained model in %s, run: neurosketch train", dataDir)
	}

	bm, err := pipeline.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return pipeline.Classify(clf, bm)
}

func runClassify(cmd *cobra.Command, args []string) error {
	res, err := classifyFile(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DIGIT\tPROBABILITY")
	for d, p := range res.Prediction.Probs {
		marker := ""
		if d == res.Prediction.Digit {
			marker = "  <-"
		}
		fmt.Fprintf(w, "%d\t%.4f%s\n", d, p, marker)
	}
	w.Flush()

	fmt.Printf("\npredicted: %d\n", res.Prediction.Digit)
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	res, err := classifyFile(args[0])
	if err != nil {
		return err
	}
	return tui.Run(res)
}

func runExport(cmd *cobra.Command, args []string) error {
	res, err := classifyFile(args[0])
	if err != nil {
		return err
	}

	cfg := loadConfig()
	if err := export.Snapshot(context.Background(), outPath,
		cfg.Window.Width, cfg.Window.Height, res.Targets()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func runNormalize(cmd *cobra.Command, args []string) error {
	bm, err := pipeline.LoadImage(args[0])
	if err != nil {
		return err
	}
	g := imaging.Normalize(bm)

	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, g.Image()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	models, err := st.List()
	if err != nil {
		return err
	}
	if len(models) == 0 {
		fmt.Println("no models found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTRAINED\tTOPOLOGY\tEPOCHS\tSAMPLES\tACCURACY")
	for _, m := range models {
		fmt.Fprintf(w, "%s\t%s\t784-%d-%d-10\t%d\t%d\t%.2f%%\n",
			m.ID,
			m.Timestamp.Format("2006-01-02 15:04:05"),
			m.Hidden1, m.Hidden2,
			m.Epochs,
			m.Samples,
			m.Accuracy*100,
		)
	}
	return w.Flush()
}
