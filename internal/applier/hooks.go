package applier

import (
	"context"
	"os"
	"os/exec"
	"time"

	"github.com/rivnakm/chcolors/internal/config"
	"github.com/rivnakm/chcolors/internal/theme"
)

// Environment passed to hooks.
const (
	HookNameEnv = "CHCOLORS_NAME"
	HookTypeEnv = "CHCOLORS_TYPE"
)

// hookWaitDelay bounds how long output copying may outlive a killed hook.
const hookWaitDelay = time.Second

func (a *Applier) runHooks(ctx context.Context, program config.Program, t theme.Theme) error {
	for _, hook := range program.Hooks {
		a.logger.Debug().Str("program", program.Name).Str("hook", hook).Msg("running hook")

		hookCtx, cancel := context.WithTimeout(ctx, a.hookTimeout)
		cmd := exec.CommandContext(hookCtx, a.shell, "-c", hook)
		cmd.Env = append(os.Environ(),
			HookNameEnv+"="+t.Name,
			HookTypeEnv+"="+t.Type.String(),
		)
		cmd.Stdout = a.hookOutput
		cmd.Stderr = a.hookOutput
		cmd.WaitDelay = hookWaitDelay

		err := cmd.Run()
		cancel()
		if err != nil {
			return &FileError{Program: program.Name, Path: hook, Op: OpHook, Err: err}
		}
	}
	return nil
}
