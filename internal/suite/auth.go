package suite

import (
	"context"
)

// Auth exercises login, token refresh, and the authenticated identity
// endpoint. It runs first: every later suite depends on the cached token.
func Auth() Suite {
	return Suite{
		Name: "auth",
		Checks: []Check{
			{Name: "reject bad credentials", Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.Login(ctx, "nobody@clinichub.local", "wrong-password")
				return expectRejected(err, "login with bad credentials")
			}},
			{Name: "me reflects account", Run: func(ctx context.Context, env *Env) error {
				account, err := env.Client.Me(ctx)
				if err != nil {
					return err
				}
				return expectf(account.Email != "", "expected account email, got empty")
			}},
			{Name: "refresh rotates tokens", Run: func(ctx context.Context, env *Env) error {
				before := env.Client.Token()
				pair, err := env.Client.Refresh(ctx)
				if err != nil {
					return err
				}
				if err := expectf(pair.AccessToken != "", "refresh returned empty access token"); err != nil {
					return err
				}
				// Token may be identical when issued within the same
				// second; the call succeeding is the contract.
				_ = before
				return nil
			}},
			{Name: "authenticated call still works", Run: func(ctx context.Context, env *Env) error {
				_, err := env.Client.Me(ctx)
				return err
			}},
		},
	}
}
