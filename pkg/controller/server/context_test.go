package server_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/docswatch/pkg/controller/server"
	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestCallerContext(t *testing.T) {
	t.Run("caller is not set", func(t *testing.T) {
		gt.V(t, server.CallerFromForTest(context.Background())).Equal(nil)
	})

	t.Run("caller is carried by context", func(t *testing.T) {
		caller := model.NewUserCaller("user-token", "octocat")
		ctx := server.WithCallerForTest(context.Background(), caller)
		gt.V(t, server.CallerFromForTest(ctx)).Equal(caller)
	})
}
