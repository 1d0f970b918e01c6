package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const envPrefix = "VOICEINFO"

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v      *viper.Viper
	logger *zap.Logger
	out    io.Writer
	errOut io.Writer

	configFile string
	logLevel   string
	output     string
	signal     signalFlags
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: zap.NewNop(),
		out:    out,
		errOut: errOut,
	}

	root := &cobra.Command{
		Use:   "voiceinfo",
		Short: "Voice analysis kernels on synthetic signals",
		Long: `voiceinfo estimates LPC coefficients, formants and pitch of synthetic
signals built from sine tones and deterministic Gaussian noise, and runs the
batch frame analyzer over longer signals.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initialize(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVarP(&a.output, "output", "o", "text", "output format (text, yaml)")
	a.signal.register(pf)

	root.AddCommand(
		newLPCCmd(a),
		newFormantsCmd(a),
		newPitchCmd(a),
		newNoiseCmd(a),
		newAnalyzeCmd(a),
	)
	return root
}

func (a *app) initialize(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	a.v.AutomaticEnv()

	if a.configFile != "" {
		a.v.SetConfigFile(a.configFile)
		a.v.SetConfigType("yaml")
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.configFile, err)
		}
	}

	if err := bindFlags(cmd, a.v); err != nil {
		return err
	}

	logger, err := newLogger(a.logLevel, a.errOut)
	if err != nil {
		return err
	}
	a.logger = logger

	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("config loaded", zap.String("file", used))
	}

	switch a.output {
	case "text", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text or yaml)", a.output)
	}
}

// bindFlags copies config and environment values into every flag the user
// did not set on the command line.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var lastErr error

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if err := v.BindEnv(f.Name, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))); err != nil {
			lastErr = err
			return
		}

		if f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, flagValue(v.Get(f.Name))); err != nil {
			lastErr = fmt.Errorf("flag --%s: %w", f.Name, err)
		}
	})

	return lastErr
}

func flagValue(val any) string {
	switch x := val.(type) {
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = fmt.Sprint(e)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(x, ",")
	default:
		return fmt.Sprint(x)
	}
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("voiceinfo"), nil
}
