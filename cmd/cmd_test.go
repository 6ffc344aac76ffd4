package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	seederrors "github.com/psds-microservice/employee-seed/internal/errors"
)

const csvFixture = "Employee Name,email,alphanumeric,Employee Start Date,Current Line Manager,Line Manager Department,Department,Department email\n" +
	"Jane Doe,jane@x.com,A1,01.02.23,Bob,Ops,Eng,eng@x.com\n" +
	"John Roe,john@x.com,B2,15.06.21,Alice,Eng,Ops,ops@x.com\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{"SEED_INPUT", "SEED_OUTPUT", "SEED_DELIMITER", "SEED_STRICT", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags возвращает флаги всего дерева команд к значениям по умолчанию,
// чтобы тесты не зависели от порядка запуска
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	output := filepath.Join(dir, "seed", "out.sql")
	require.NoError(t, os.WriteFile(input, []byte(csvFixture), 0o644))

	stdout, err := execute(t, "generate", "-i", input, "-o", output)
	require.NoError(t, err)
	assert.Equal(t, "SQL statements generated in "+output+"\n", stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "'Jane Doe'")
	assert.Contains(t, lines[1], "'John Roe'")
}

func TestRootDefaultsToGenerate(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	output := filepath.Join(dir, "out.sql")
	require.NoError(t, os.WriteFile(input, []byte(csvFixture), 0o644))

	_, err := execute(t, "--input", input, "--output", output)
	require.NoError(t, err)
	assert.FileExists(t, output)
}

func TestGenerateCommand_MissingInput(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "generate", "-i", filepath.Join(dir, "absent.csv"), "-o", filepath.Join(dir, "out.sql"))
	require.Error(t, err)
	assert.ErrorIs(t, err, seederrors.ErrRead)
}

func TestGenerateCommand_InvalidDelimiter(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(input, []byte(csvFixture), 0o644))

	_, err := execute(t, "generate", "-i", input, "-o", filepath.Join(dir, "out.sql"), "--delimiter", ";;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}

func TestGenerateCommand_FlagsDoNotLeak(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(input, []byte(csvFixture), 0o644))

	_, err := execute(t, "generate", "-i", input, "-o", filepath.Join(dir, "bad.sql"), "--delimiter", ";;")
	require.Error(t, err)

	// следующий запуск без --delimiter берёт запятую по умолчанию
	output := filepath.Join(dir, "good.sql")
	_, err = execute(t, "generate", "-i", input, "-o", output)
	require.NoError(t, err)
	assert.FileExists(t, output)
	assert.False(t, generateCmd.Flags().Changed("delimiter"))
	assert.Empty(t, generateDelimiter)

	// без -o используется путь из конфига, а не из прошлого запуска
	t.Setenv("SEED_OUTPUT", "")
	_, err = execute(t, "generate", "-i", filepath.Join(dir, "absent.csv"))
	require.ErrorIs(t, err, seederrors.ErrRead)
	assert.Empty(t, generateOutput)
}

func TestGenerateCommand_EscapesQuotes(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.csv")
	output := filepath.Join(dir, "out.sql")
	require.NoError(t, os.WriteFile(input, []byte(strings.SplitAfter(csvFixture, "\n")[0]+
		"Pat O'Brien,pat@x.com,C3,01.02.23,Bob,Ops,R&D\\UK,eng@x.com\n"), 0o644))

	_, err := execute(t, "generate", "-i", input, "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "VALUES ('Pat O''Brien', ")
	assert.Contains(t, string(data), `, E'R&D\\UK', `)
	assert.Contains(t, generateCmd.Long, "escaped SQL string literals")
}

func TestPingCommand_PrimaryUnreachable(t *testing.T) {
	t.Setenv("DB_HOST", "127.0.0.1")
	t.Setenv("DB_PORT", "1") // закрытый порт на loopback
	t.Setenv("DB_USER", "seed")
	t.Setenv("DB_NAME", "employees")
	t.Setenv("DB_SSLMODE", "disable")

	stdout, err := execute(t, "ping", "--primary", "--timeout", "2s")
	require.Error(t, err)
	assert.ErrorIs(t, err, seederrors.ErrConnection)
	assert.NotContains(t, stdout, "Connection successful!")
}

func TestPingCommand_SecondaryUnsupportedDriver(t *testing.T) {
	t.Setenv("SECONDARY_DB_DRIVER", "db2")

	_, err := execute(t, "ping")
	require.Error(t, err)
	assert.ErrorIs(t, err, seederrors.ErrConnection)
}

func TestVersionCommand(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Version: dev")
}

func TestMigrateCommand_RejectsUnknownDirection(t *testing.T) {
	_, err := execute(t, "migrate", "sideways")
	require.Error(t, err)
}
