package cli

// Export unexported functions for testing
var (
	ParseGitHubRemoteForTest = parseGitHubRemote
	ResolveTargetForTest     = resolveTarget
)
