// Package mongo provides a typed CRUD handle over a single MongoDB collection.
//
// Any struct whose pointer implements common.Record can be stored:
//
//	type User struct {
//		UID  string `bson:"_id"`
//		Name string `bson:"name"`
//	}
//
//	func (u *User) ID() string              { return u.UID }
//	func (u *User) SetID(id string)         { u.UID = id }
//	func (*User) New(name string) User      { return User{UID: mongo.NewID(), Name: name} }
//
//	store, err := mongo.Connect[User](ctx, mongo.NewOptions(uri, "db", "users", nil), logger)
//	if err != nil {
//		return err
//	}
//	defer store.Disconnect(ctx)
//
//	created, err := store.InsertOne(ctx, store.New("paolo"))
//
// Identifiers are ObjectID hex strings. Every operation taking an id validates it
// with ParseID before talking to the server. Lookups that match nothing return a
// nil record and a nil error.
package mongo
