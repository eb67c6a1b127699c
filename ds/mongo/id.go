package mongo

import (
	"fmt"

	"github.com/logistics-id/simplemongo/common"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID is the default MongoDB document ID field name.
const ID = "_id"

// ParseID checks that id is an ObjectID hex string and returns its canonical
// lowercase form.
func ParseID(id string) (string, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a valid id", common.ErrInvalidID, id)
	}
	return oid.Hex(), nil
}

// NewID returns a fresh ObjectID as a hex string.
func NewID() string {
	return primitive.NewObjectID().Hex()
}
