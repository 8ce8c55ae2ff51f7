package cli

type GitMetadataForTest = gitMetadata

var (
	ReadGitMetadataForTest  = readGitMetadata
	ParseRemoteURLForTest   = parseRemoteURL
	BuildPushPayloadForTest = buildPushPayload
)
