package usecase

// Export unexported functions for testing
var (
	FindItemForTest      = findItem
	LockKeysForTest      = lockKeys
	TruncateNameForTest  = truncateName
	NormalizeNameForTest = normalizeName
)

func ClassifyStageForTest(name string) string {
	switch classifyStage(name) {
	case stageTest:
		return "test"
	case stageBuild:
		return "build"
	case stageDeploy:
		return "deploy"
	default:
		return "generic"
	}
}
