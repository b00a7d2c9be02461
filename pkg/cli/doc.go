/*
Package cli provides command-line utilities shared by the vocabcmp command.

It defines the typed errors used across the pipeline (usage errors, input
file errors, command failures), output formatters for the comparison report
(plain text and JSON), and signal handling for watch mode.

Output Formatting:

	formatter, err := cli.NewFormatter(cli.FormatJSON)
	if err != nil {
		return err
	}
	if err := formatter.FormatTo(os.Stdout, report); err != nil {
		return err
	}

Signal Handling:

	ctx := cli.SetupSignalHandler()
	// ctx is cancelled on SIGINT/SIGTERM; used to stop watch mode
*/
package cli
