package simplemongo_test

import (
	"context"
	"os"
	"testing"

	"github.com/logistics-id/simplemongo"
	"github.com/logistics-id/simplemongo/common"
	"github.com/logistics-id/simplemongo/ds/mongo"
	"github.com/stretchr/testify/assert"
)

type note struct {
	UID   string `bson:"_id"`
	Title string `bson:"title"`
}

func (n *note) ID() string         { return n.UID }
func (n *note) SetID(id string)    { n.UID = id }
func (*note) New(name string) note { return note{UID: mongo.NewID(), Title: name} }

func TestStart(t *testing.T) {
	c := &simplemongo.Config{
		Name:    "service.test",
		IsDev:   true,
		Version: os.Getenv("APP_VERSION"),
	}

	simplemongo.Start(c)

	simplemongo.Logger.Info("logging is running on dev mode")

	assert.Equal(t, c.Name, simplemongo.Service.Name)
	assert.NotNil(t, simplemongo.NewLogger("child"))
}

func TestOpenRejectsIncompleteEnvironment(t *testing.T) {
	t.Setenv("OPENTEST_URI", "mongodb://127.0.0.1:27017")

	s, err := simplemongo.Open[note](context.Background(), "OPENTEST_")
	assert.ErrorIs(t, err, common.ErrInvalidOptions)
	assert.Nil(t, s)
}

func TestNewLoggerCarriesPlatform(t *testing.T) {
	t.Setenv("PLATFORM", "edge")

	assert.Equal(t, "edge.child", simplemongo.NewLogger("child").Name())
}
