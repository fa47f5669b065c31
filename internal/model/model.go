package model

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a stored catalog document. Documents are schemaless, so every
// field except the key decodes as whatever type the store holds; a field
// missing from the document stays missing in the response.
type Product struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Image          any                `bson:"image,omitempty" json:"image,omitempty"`
	ItemName       any                `bson:"itemName,omitempty" json:"itemName,omitempty"`
	Category       any                `bson:"category,omitempty" json:"category,omitempty"`
	Price          any                `bson:"price,omitempty" json:"price,omitempty"`
	Rating         any                `bson:"rating,omitempty" json:"rating,omitempty"`
	Stock          any                `bson:"stock,omitempty" json:"stock,omitempty"`
	ProcessingTime any                `bson:"processingTime,omitempty" json:"processingTime,omitempty"`
	Customization  any                `bson:"customization,omitempty" json:"customization,omitempty"`
	Description    any                `bson:"description,omitempty" json:"description,omitempty"`
	UserEmail      any                `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	UserName       any                `bson:"userName,omitempty" json:"userName,omitempty"`
}

// ProductInput is the request body for creating and updating a product.
// Unknown keys are dropped; the identifier is never taken from the body.
type ProductInput struct {
	Image          *string  `json:"image"`
	ItemName       *string  `json:"itemName"`
	Category       *string  `json:"category"`
	Price          *float64 `json:"price" binding:"omitempty,gte=0"`
	Rating         *float64 `json:"rating"`
	Stock          *float64 `json:"stock" binding:"omitempty,gte=0"`
	ProcessingTime any      `json:"processingTime"`
	Customization  any      `json:"customization"`
	Description    *string  `json:"description"`
	UserEmail      *string  `json:"userEmail" binding:"omitempty,email"`
	UserName       *string  `json:"userName"`
}

func (in ProductInput) Product() *Product {
	return &Product{
		Image:          value(in.Image),
		ItemName:       value(in.ItemName),
		Category:       value(in.Category),
		Price:          value(in.Price),
		Rating:         value(in.Rating),
		Stock:          value(in.Stock),
		ProcessingTime: in.ProcessingTime,
		Customization:  in.Customization,
		Description:    value(in.Description),
		UserEmail:      value(in.UserEmail),
		UserName:       value(in.UserName),
	}
}

// value unwraps p so that an absent field is a nil interface, not a typed nil.
func value[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// UpdateSet returns the full replacement set for an update. Every field is
// present; fields absent from the input are written as null.
func (in ProductInput) UpdateSet() bson.M {
	return bson.M{
		"image":          in.Image,
		"itemName":       in.ItemName,
		"category":       in.Category,
		"price":          in.Price,
		"rating":         in.Rating,
		"stock":          in.Stock,
		"processingTime": in.ProcessingTime,
		"customization":  in.Customization,
		"description":    in.Description,
		"userEmail":      in.UserEmail,
		"userName":       in.UserName,
	}
}

// User is a schemaless document. The store key is exposed as "id".
type User map[string]any

// UserFromDocument renames the stored _id key to id.
func UserFromDocument(doc bson.M) User {
	u := make(User, len(doc))
	for k, v := range doc {
		if k == "_id" {
			k = "id"
		}
		u[k] = v
	}
	return u
}

// Document returns the fields to insert, without any client supplied key.
func (u User) Document() bson.M {
	doc := make(bson.M, len(u))
	for k, v := range u {
		if k == "_id" || k == "id" {
			continue
		}
		doc[k] = v
	}
	return doc
}

type InsertResult struct {
	Acknowledged bool               `json:"acknowledged"`
	InsertedID   primitive.ObjectID `json:"insertedId"`
}

type UpdateResult struct {
	Success  bool `json:"success"`
	Modified bool `json:"modified"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
