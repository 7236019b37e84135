package cli

// Command descriptions
const (
	MsgRootShort = "Materialize workspace templates and build start links"
	MsgRootLong  = `wslaunch turns a manifest describing files and directories into a
template under .workspace-launch/templates/<id>, rewriting it only when its
content changed, and prints the link that starts the workspace.`

	MsgMaterializeShort = "Write a manifest's template and print its start link"
	MsgPlanShort        = "Show the normalized template without writing anything"
	MsgDiffShort        = "Show what materializing a manifest would change"
	MsgLinkShort        = "Print a start link"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate man page"
)

// Status messages
const (
	MsgNoStoreDiff = "No backing store configured; nothing to compare"
	MsgVersionFmt  = "wslaunch version %s\n"
	MsgCommitFmt   = "  commit: %s\n"
	MsgBuiltFmt    = "  built:  %s\n"
)
