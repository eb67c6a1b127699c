package mongo

import (
	"errors"
	"sync"

	"github.com/logistics-id/simplemongo/common"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.uber.org/zap"
	"golang.org/x/net/context"
)

// toSetDocument marshals the whole record into a $set body. The id field is left
// out since the update filter already pins it.
func toSetDocument(record any, idField string) (bson.M, error) {
	raw, err := bson.Marshal(record)
	if err != nil {
		return nil, err
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, idField)

	return doc, nil
}

func commandMap(c bson.Raw) map[string]any {
	var res map[string]any

	if err := bson.Unmarshal(c, &res); err != nil {
		res = map[string]any{"raw": string(c)}
	}

	return res
}

func skipCommand(name string) bool {
	return name == "ping" || name == "endSessions"
}

// commandLogger remembers started commands until they finish so the body can be
// logged next to the outcome.
type commandLogger struct {
	logger   *zap.Logger
	commands sync.Map
}

func newCommandMonitor(l *zap.Logger) *event.CommandMonitor {
	cl := &commandLogger{logger: l}

	return &event.CommandMonitor{
		Started:   cl.started,
		Succeeded: cl.succeeded,
		Failed:    cl.failed,
	}
}

func (cl *commandLogger) started(ctx context.Context, evt *event.CommandStartedEvent) {
	if !skipCommand(evt.CommandName) {
		cl.commands.Store(evt.RequestID, evt.Command)
	}
}

func (cl *commandLogger) succeeded(ctx context.Context, evt *event.CommandSucceededEvent) {
	if skipCommand(evt.CommandName) {
		return
	}
	if cmd, ok := cl.commands.LoadAndDelete(evt.RequestID); ok {
		cl.logger.Info("MGO/CMD SUCCEEDED",
			zap.String("request_id", common.GetContextRequestID(ctx)),
			zap.String("event", evt.CommandName),
			zap.Duration("duration", evt.Duration),
			zap.Any("command", commandMap(cmd.(bson.Raw))),
		)
	}
}

func (cl *commandLogger) failed(ctx context.Context, evt *event.CommandFailedEvent) {
	if skipCommand(evt.CommandName) {
		return
	}
	if cmd, ok := cl.commands.LoadAndDelete(evt.RequestID); ok {
		cl.logger.Error("MGO/CMD FAILED",
			zap.String("request_id", common.GetContextRequestID(ctx)),
			zap.String("event", evt.CommandName),
			zap.Duration("duration", evt.Duration),
			zap.Any("command", commandMap(cmd.(bson.Raw))),
			zap.Error(errors.New(evt.Failure)),
		)
	}
}
