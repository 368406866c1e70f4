package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// InquiryCollection is the document collection holding contact-form
// submissions: the lowercase entity name.
const InquiryCollection = "inquiry"

// Inquiry is a validated contact-form submission. Records are immutable once
// stored; the store assigns the identifier on insert.
type Inquiry struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone,omitempty"`
	Message         string             `bson:"message"`
	Source          string             `bson:"source"`
	NewsletterOptIn bool               `bson:"newsletter_opt_in"`
}
