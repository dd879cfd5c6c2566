package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Path and file toolbox for PHP projects"
	MsgAbsShort        = "Tell whether a path is absolute"
	MsgRelShort        = "Strip the first matching base from a path"
	MsgExtShort        = "Print the extension of a path"
	MsgJoinShort       = "Join path segments with /"
	MsgExpandShort     = "Expand ~, . and relative paths"
	MsgMkdirShort      = "Create directories and their parents"
	MsgReadShort       = "Print a file, or decode it as JSON"
	MsgWriteShort      = "Write text or JSON to a file"
	MsgDataDirShort    = "Print the phint data directory"
	MsgBinsShort       = "Create executable PHP stubs"
	MsgFindShort       = "List files under directories"
	MsgTypesShort      = "List PHP types declared under directories"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Group titles
	MsgGroupPaths   = "PATHS:"
	MsgGroupFiles   = "FILES:"
	MsgGroupProject = "PROJECT:"
	MsgGroupMisc    = "MISC:"

	// Output
	MsgVersionFormat  = "phint version %s\n"
	MsgCommitFormat   = "  commit: %s\n"
	MsgBuiltFormat    = "  built:  %s\n"
	MsgConfigWritten  = "Wrote %s"
	MsgConfigExists   = "Config file %s already exists"
	MsgNoCommand      = "no command specified"
	MsgDataDirMissing = "data directory is unavailable (is the home directory set?)"
	MsgFileUnreadable = "%s is not a readable file"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat   = "Output format: auto, text, term, json or yaml"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/phint/config.toml)"
	MsgFlagFrom     = "Directory relative paths are resolved against"
	MsgFlagMode     = "Directory mode in octal (default from config)"
	MsgFlagReadJSON = "Decode the file as JSON with comments"
	MsgFlagJSON     = "Parse CONTENT as JSON and write it pretty-printed"
	MsgFlagAppend   = "Append instead of overwriting"
	MsgFlagExt      = "Only files with this extension (* for all)"
	MsgFlagTypesExt = "Source file extension (default from config)"
	MsgFlagDotfiles = "Include hidden files and directories"
	MsgFlagNS       = "Namespace prefix to keep (repeatable)"
	MsgFlagDefaults = "Print the commented default configuration"
	MsgFlagInit     = "Create the user config file from the defaults"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/expand-long.txt
	msgExpandLongRaw string
	MsgExpandLong    = strings.TrimSpace(msgExpandLongRaw)

	//go:embed msgs/expand-example.txt
	msgExpandExampleRaw string
	MsgExpandExample    = strings.TrimRight(msgExpandExampleRaw, "\n")

	//go:embed msgs/write-long.txt
	msgWriteLongRaw string
	MsgWriteLong    = strings.TrimSpace(msgWriteLongRaw)

	//go:embed msgs/write-example.txt
	msgWriteExampleRaw string
	MsgWriteExample    = strings.TrimRight(msgWriteExampleRaw, "\n")

	//go:embed msgs/bins-long.txt
	msgBinsLongRaw string
	MsgBinsLong    = strings.TrimSpace(msgBinsLongRaw)

	//go:embed msgs/find-long.txt
	msgFindLongRaw string
	MsgFindLong    = strings.TrimSpace(msgFindLongRaw)

	//go:embed msgs/types-long.txt
	msgTypesLongRaw string
	MsgTypesLong    = strings.TrimSpace(msgTypesLongRaw)

	//go:embed msgs/types-example.txt
	msgTypesExampleRaw string
	MsgTypesExample    = strings.TrimRight(msgTypesExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
