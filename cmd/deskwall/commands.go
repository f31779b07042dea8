package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/genricoloni/deskwall/internal/config"
	"github.com/genricoloni/deskwall/internal/domain"
	"github.com/genricoloni/deskwall/internal/monitor"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type commandEnv struct {
	cfg       *config.AppConfig
	overrides []fx.Option
}

// monitorIndex resolves the monitor from an optional positional argument or the --monitor flag
func monitorIndex(cmd *cobra.Command, positional []string) (int, error) {
	index, err := cmd.Flags().GetInt("monitor")
	if err != nil {
		return 0, err
	}
	if len(positional) == 0 {
		return index, nil
	}
	if cmd.Flags().Changed("monitor") {
		return 0, errors.New("the monitor index was given both as an argument and with --monitor")
	}

	index, err = strconv.Atoi(positional[0])
	if err != nil {
		return 0, fmt.Errorf("invalid monitor index %q", positional[0])
	}
	return index, nil
}

// modeFlag is a pflag.Value accepting display mode names
type modeFlag struct {
	mode domain.DisplayMode
}

func (f *modeFlag) String() string {
	return f.mode.String()
}

func (f *modeFlag) Set(s string) error {
	mode, err := domain.ParseDisplayMode(s)
	if err != nil {
		return err
	}
	f.mode = mode
	return nil
}

func (f *modeFlag) Type() string {
	return "mode"
}

func newGetCommand(env func() *commandEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [monitor_index]",
		Short: "Print the wallpaper of a monitor",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := monitorIndex(cmd, args)
			if err != nil {
				return err
			}

			e := env()
			return withSession(cmd.Context(), e.cfg, e.overrides, func(s session, dir *monitor.Directory) error {
				m, err := dir.Select(index)
				if err != nil {
					return err
				}
				path, err := s.Accessor.Get(m)
				if err != nil {
					s.Logger.Debug("Wallpaper lookup failed", zap.String("monitor", m.ID), zap.Error(err))
					return fmt.Errorf("failed to get the desktop wallpaper: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
	cmd.Flags().IntP("monitor", "m", 0, "index of the monitor to read")
	return cmd
}

func newSetCommand(env func() *commandEnv) *cobra.Command {
	scale := &modeFlag{mode: domain.Span}

	cmd := &cobra.Command{
		Use:   "set <path> [monitor_index]",
		Short: "Set the wallpaper of a monitor and the display mode of all monitors",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := monitorIndex(cmd, args[1:])
			if err != nil {
				return err
			}

			e := env()
			return withSession(cmd.Context(), e.cfg, e.overrides, func(s session, dir *monitor.Directory) error {
				m, err := dir.Select(index)
				if err != nil {
					return err
				}
				return s.Accessor.Set(m, args[0], scale.mode)
			})
		},
	}
	cmd.Flags().IntP("monitor", "m", 0, "index of the monitor to change")
	cmd.Flags().VarP(scale, "scale", "s", "display mode applied to every monitor (center, tile, stretch, fit, fill, span)")
	return cmd
}

func newMonitorsCommand(env func() *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "monitors",
		Short: "List the monitors and their recorded wallpapers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			return withSession(cmd.Context(), e.cfg, e.overrides, func(_ session, dir *monitor.Directory) error {
				out := cmd.OutOrStdout()
				for i, m := range dir.Monitors() {
					fmt.Fprintf(out, "%d\t%s\t%s\n", i, m.ID, m.Wallpaper)
				}
				return nil
			})
		},
	}
}

func newModeCommand(env func() *commandEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "mode",
		Short: "Print the current display mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e := env()
			return withSession(cmd.Context(), e.cfg, e.overrides, func(s session, _ *monitor.Directory) error {
				mode, err := s.Accessor.DisplayMode()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), mode)
				return nil
			})
		},
	}
}
