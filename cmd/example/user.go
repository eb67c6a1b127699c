package main

import "github.com/logistics-id/simplemongo/ds/mongo"

// User is the record the sample program stores.
type User struct {
	UID  string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

func (u *User) ID() string      { return u.UID }
func (u *User) SetID(id string) { u.UID = id }

func (*User) New(name string) User {
	return User{UID: mongo.NewID(), Name: name}
}
