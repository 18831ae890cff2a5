package database

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/hendrawan/sitevault/internal/config"
	"github.com/hendrawan/sitevault/internal/domain"
)

// MySQLDumper produces SQL dumps by invoking the mysqldump binary.
type MySQLDumper struct {
	config *config.DatabaseConfig
}

func NewMySQL(cfg *config.DatabaseConfig) *MySQLDumper {
	return &MySQLDumper{config: cfg}
}

func (m *MySQLDumper) Dump(ctx context.Context, outputPath string) error {
	cmd := exec.CommandContext(ctx, "mysqldump", m.dumpArgs(outputPath)...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: mysqldump: %v, output: %s", domain.ErrDumpFailed, err, string(output))
	}
	return nil
}

func (m *MySQLDumper) dumpArgs(outputPath string) []string {
	return []string{
		fmt.Sprintf("--host=%s", m.config.Host),
		fmt.Sprintf("--port=%d", m.config.Port),
		fmt.Sprintf("--user=%s", m.config.User),
		fmt.Sprintf("--password=%s", m.config.Password),
		"--single-transaction",
		"--quick",
		fmt.Sprintf("--result-file=%s", outputPath),
		m.config.Name,
	}
}

// Ping checks connectivity with the mysql client. Used at wiring time as a
// courtesy check only; a dead server still surfaces through Dump.
func (m *MySQLDumper) Ping(ctx context.Context) error {
	args := []string{
		fmt.Sprintf("--host=%s", m.config.Host),
		fmt.Sprintf("--port=%d", m.config.Port),
		fmt.Sprintf("--user=%s", m.config.User),
		fmt.Sprintf("--password=%s", m.config.Password),
		"-e", "SELECT 1",
	}

	cmd := exec.CommandContext(ctx, "mysql", args...)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("mysql ping failed: %w", err)
	}
	return nil
}
