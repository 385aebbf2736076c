package usecase

import (
	"context"

	"github.com/m-mizutani/docswatch/pkg/domain/model"
	"github.com/m-mizutani/docswatch/pkg/domain/types"
	"github.com/m-mizutani/docswatch/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// AuthenticateUser returns login of the user owning token. A token that GitHub no longer
// accepts results in types.ErrUnauthorized.
func (x *UseCase) AuthenticateUser(ctx context.Context, token types.GitHubToken) (string, error) {
	if token == "" {
		return "", goerr.Wrap(types.ErrUnauthorized, "token is empty")
	}

	key := "user:" + model.HashToken(token)
	login, err := repository.GetOrCompute(ctx, x.clients.ShortCache(), key, x.cacheTTL,
		func(ctx context.Context) (string, error) {
			login, err := x.clients.GitHub().ForToken(token).CurrentUser(ctx)
			if err != nil {
				return "", err
			}
			if login == "" {
				return "", goerr.Wrap(types.ErrUnauthorized, "no login for the token")
			}
			return login, nil
		})
	if err != nil {
		return "", err
	}

	return login, nil
}
