package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AhmedTyson/accountscan/internal/config"
	"github.com/AhmedTyson/accountscan/internal/display"
	"github.com/AhmedTyson/accountscan/internal/export"
	"github.com/AhmedTyson/accountscan/internal/logger"
	"github.com/AhmedTyson/accountscan/internal/scanner"
)

// targetPath is the file the command scans. Tests swap it for a fixture.
var targetPath = scanner.DefaultTargetPath

// runCommand implements the root command logic
func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	exportPath, _ := cmd.Flags().GetString("export")

	return runScanWithOutput(targetPath, cfg, exportPath, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var logLevelPtr, colorPtr *string
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &v
	}
	if cmd.Flags().Changed("color") {
		v, _ := cmd.Flags().GetString("color")
		colorPtr = &v
	}
	cfg.MergeWithFlags(logLevelPtr, colorPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// runScanWithOutput scans path and prints the report to out.
// Logs and the duplicate summary go to errOut. A non-empty exportPath also
// writes the findings snapshot there.
func runScanWithOutput(path string, cfg *config.Config, exportPath string, out, errOut io.Writer) error {
	if exportPath != "" && sameFile(exportPath, path) {
		return fmt.Errorf("export path %s is the scanned file", exportPath)
	}

	log := logger.NewConsoleLogger(errOut, cfg.LogLevel)
	errColor := display.ColorEnabled(cfg.Color, errOut)
	log.SetColor(errColor)

	log.LogScanStart(path)
	start := time.Now()

	src, err := scanner.Load(path)
	if err != nil {
		return err
	}

	pos := scanner.Scan(src, log)
	log.LogScanComplete(len(src.Lines), time.Since(start))

	if err := display.WriteReport(out, pos, display.ColorEnabled(cfg.Color, out)); err != nil {
		return err
	}

	if w, ok := display.WarnDuplicates(pos); ok {
		w.Display(errOut, errColor)
	}

	if exportPath != "" {
		if err := export.Write(exportPath, export.NewSnapshot(src, pos)); err != nil {
			return fmt.Errorf("failed to export findings: %w", err)
		}
		log.LogInfo(fmt.Sprintf("Findings written to %s", exportPath))
	}

	return nil
}

// sameFile reports whether a and b resolve to the same file, either by
// cleaned absolute path or, when both exist, by device and inode.
func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA == nil && errB == nil && absA == absB {
		return true
	}

	infoA, err := os.Stat(a)
	if err != nil {
		return false
	}
	infoB, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(infoA, infoB)
}
