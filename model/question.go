package model

import "encoding/json"

// ID identifies a question. Ids are assigned by the questions service and are
// never generated client side. The reference service emits integer ids while
// newer deployments emit opaque strings, so both decode into the same type.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type Question struct {
	ID     ID       `json:"id"`
	Title  string   `json:"title"`
	Answer string   `json:"answer"`
	Tags   []string `json:"tags"`
}

// Draft is the payload sent when creating or updating a question.
// The id is carried in the request path, never in the body.
type Draft struct {
	Title  string   `json:"title"`
	Answer string   `json:"answer"`
	Tags   []string `json:"tags"`
}
