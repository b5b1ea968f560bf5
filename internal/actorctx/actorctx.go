package actorctx

import "context"

type ctxKey string

const keyActorEmail ctxKey = "actor_email"

func WithActor(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, keyActorEmail, email)
}

func ActorFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(keyActorEmail).(string)

	return v, ok && v != ""
}
