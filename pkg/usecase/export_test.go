package usecase

import "time"

// Export unexported functions for testing
var (
	FormatCommitsForTest = formatCommits
	IsHexSHAForTest      = isHexSHA
)

func (x *UseCase) HomeTTLForTest() time.Duration {
	return x.homeTTL()
}
