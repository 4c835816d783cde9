package imgreorder

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Copy a folder of images into a reordered sibling folder"
	MsgListShort       = "List the images of a folder in scan order"
	MsgListLong        = "List prints the image files directly inside a folder, sorted by path. This is the sequence reorder starts from."
	MsgReorderShort    = "Reorder the images of a folder into <folder>_reordered"
	MsgPreviewShort    = "Show what reorder would copy without writing anything"
	MsgPreviewLong     = "Preview scans the folder and prints the position, new name and source of every image, exactly as reorder would write them. Nothing is created."
	MsgExplainShort    = "Explain how the new order is computed"
	MsgGenConfigShort  = "Generate a default configuration file"
	MsgGenConfigLong   = "Output the default configuration, with every value commented out, to stdout or to the user config file."
	MsgVersionShort    = "Print version information"
	MsgManShort        = "Generate man pages into a directory"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigWritten = "Wrote configuration to %s"
	MsgConfigExists  = "configuration file %s already exists"
	MsgManWritten    = "Wrote man pages to %s"
	MsgProgressTitle = "Copying"

	// Error messages
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrList       = "failed to list images: %w"
	MsgErrReorder    = "failed to reorder images: %w"
	MsgErrPreview    = "failed to preview reorder: %w"
	MsgErrRenderer   = "failed to set up output: %w"
	MsgErrGenConfig  = "failed to write configuration: %w"
	MsgErrMan        = "failed to generate man pages: %w"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Read configuration from this file instead of the default location"
	MsgFlagFormat  = "Output format: text, json, yaml or toml"
	MsgFlagNoColor = "Disable colored output"
	MsgFlagDryRun  = "Preview the copy without writing anything"
	MsgFlagWrite   = "Write config to the user config file instead of stdout"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimRight(msgListExampleRaw, "\n")

	//go:embed msgs/reorder-long.txt
	msgReorderLongRaw string
	MsgReorderLong    = strings.TrimSpace(msgReorderLongRaw)

	//go:embed msgs/reorder-example.txt
	msgReorderExampleRaw string
	MsgReorderExample    = strings.TrimRight(msgReorderExampleRaw, "\n")

	//go:embed msgs/preview-example.txt
	msgPreviewExampleRaw string
	MsgPreviewExample    = strings.TrimRight(msgPreviewExampleRaw, "\n")

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/explain.md
	msgExplainRaw string
)
