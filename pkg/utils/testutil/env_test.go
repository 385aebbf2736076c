package testutil_test

import (
	"testing"

	"github.com/m-mizutani/docswatch/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_DOCSWATCH_VALUE", "test_value")
	gt.V(t, testutil.GetEnvOrSkip(t, "TEST_DOCSWATCH_VALUE")).Equal("test_value")
}

func TestGetEnvOr(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		t.Setenv("TEST_DOCSWATCH_REPO", "octo/docs")
		gt.V(t, testutil.GetEnvOr("TEST_DOCSWATCH_REPO", "MicrosoftDocs/azure-docs")).Equal("octo/docs")
	})

	t.Run("empty", func(t *testing.T) {
		t.Setenv("TEST_DOCSWATCH_REPO", "")
		gt.V(t, testutil.GetEnvOr("TEST_DOCSWATCH_REPO", "MicrosoftDocs/azure-docs")).Equal("MicrosoftDocs/azure-docs")
	})
}
