package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	"github.com/Zacy-Sokach/Sentix/internal/api"
	"github.com/Zacy-Sokach/Sentix/internal/config"
	"github.com/Zacy-Sokach/Sentix/internal/logging"
	"github.com/Zacy-Sokach/Sentix/internal/tui"
	"github.com/Zacy-Sokach/Sentix/internal/utils"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
)

var (
	endpointFlag  string
	configDirFlag string
	logLevelFlag  string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:     "sentix",
	Short:   "Sentix - terminal sentiment analysis",
	Version: Version,
	Long: `Sentix sends text to a remote sentiment prediction service and shows
the predicted label and confidence score.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configDirFlag != "" {
			if err := os.Setenv("SENTIX_CONFIG_HOME", configDirFlag); err != nil {
				return fmt.Errorf("设置配置目录失败: %w", err)
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive()
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <text...>",
	Short: "Analyze text once and print the result",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(cmd, strings.Join(args, " "))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "Prediction endpoint URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "", "Configuration directory (default: "+utils.GetConfigPathForDisplay()+")")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("程序发生panic: %v\n", r)
			fmt.Println("堆栈跟踪:")
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	err := rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}

// setup 加载配置、初始化日志并创建 dispatcher
func setup() (*tui.Dispatcher, error) {
	exists, err := config.ConfigExists()
	if err != nil {
		return nil, err
	}
	// 首次运行时写出默认配置，方便用户修改
	if !exists {
		if err := config.SaveConfig(config.DefaultConfig()); err != nil {
			return nil, fmt.Errorf("保存配置失败: %w", err)
		}
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	if endpointFlag != "" {
		cfg.Endpoint = endpointFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}

	closeFn, err := logging.InitLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("初始化日志失败: %w", err)
	}
	closeLog = closeFn

	client := api.NewClient(cfg.Endpoint, api.WithTimeout(cfg.RequestTimeout()))
	slog.Info("[Main] Sentix starting",
		slog.String("version", Version),
		slog.String("endpoint", client.Endpoint()),
		slog.Duration("timeout", cfg.RequestTimeout()))

	return tui.NewDispatcher(client), nil
}

func runInteractive() error {
	dispatcher, err := setup()
	if err != nil {
		return err
	}

	if !isTerminal() {
		fmt.Println("Sentix 运行在非交互式模式")
		fmt.Println("请在交互式终端中运行，或使用: sentix analyze <text>")
		return nil
	}

	tui.Version = Version
	model := tui.InitialModel(dispatcher, nil)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("程序运行错误: %w", err)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, text string) error {
	dispatcher, err := setup()
	if err != nil {
		return err
	}

	state := tui.State{}.Apply(tui.TextChanged{Text: text})
	analyze := dispatcher.Analyze(state.Input.Text())
	if analyze == nil {
		return errors.New("没有可分析的文本")
	}
	state = state.Apply(tui.AnalyzeRequested{})

	switch msg := analyze().(type) {
	case tui.AnalyzeSucceededMsg:
		state = state.Apply(tui.AnalyzeSucceeded{Result: msg.Result})
	case tui.AnalyzeFailedMsg:
		fmt.Fprintln(cmd.ErrOrStderr(), lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(tui.UnreachableNotice))
		return msg.Error
	}

	view := tui.RenderResult(state.Phase, state.Result)
	accent := lipgloss.NewStyle().Foreground(lipgloss.Color(view.Palette.Color))
	fmt.Fprintln(cmd.OutOrStdout(), accent.Render(tui.RenderPlain(view, 30)))
	return nil
}

func isTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
