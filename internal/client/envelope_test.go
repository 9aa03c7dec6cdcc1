package client

import (
	"testing"

	"github.com/czarbitoon/smch-mobile-app-sub000/pkg/models"
)

func TestDecodeListEnvelopes(t *testing.T) {
	// The backend uses every one of these shapes somewhere.
	cases := map[string]string{
		"bare array":       `[{"id":1,"name":"a"},{"id":2,"name":"b"}]`,
		"data":             `{"data":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`,
		"data.data":        `{"data":{"data":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}}`,
		"named key":        `{"devices":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`,
		"data.named key":   `{"data":{"devices":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}}`,
		"data.items":       `{"data":{"items":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}}`,
		"message alongside": `{"message":"ok","data":[{"id":1,"name":"a"},{"id":2,"name":"b"}]}`,
	}

	for name, body := range cases {
		items, err := decodeList[models.Device]([]byte(body), "devices")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(items) != 2 || items[0].ID != 1 || items[1].ID != 2 {
			t.Fatalf("%s: wrong items: %+v", name, items)
		}
	}
}

func TestDecodeListFallsBackToEmpty(t *testing.T) {
	// No array anywhere is not an error; the screen renders an empty list.
	cases := map[string]string{
		"empty object":   `{}`,
		"message only":   `{"message":"nothing here"}`,
		"nested scalars": `{"data":{"data":{"count":0}}}`,
		"too deep":       `{"data":{"data":{"data":{"data":[{"id":1}]}}}}`,
	}
	for name, body := range cases {
		items, err := decodeList[models.Device]([]byte(body))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if len(items) != 0 {
			t.Fatalf("%s: expected empty fallback, got %d items", name, len(items))
		}
	}
}

func TestDecodeListBadPayload(t *testing.T) {
	if _, err := decodeList[models.Device]([]byte(`{"data":[{"id":"not-a-number"}]}`)); err == nil {
		t.Fatalf("expected decode error for mistyped array")
	}
}

func TestDecodeOne(t *testing.T) {
	cases := map[string]string{
		"bare":        `{"id":7,"name":"printer"}`,
		"data":        `{"data":{"id":7,"name":"printer"}}`,
		"named":       `{"device":{"id":7,"name":"printer"}}`,
		"data.nested": `{"data":{"data":{"id":7,"name":"printer"}}}`,
	}
	for name, body := range cases {
		d, err := decodeOne[models.Device]([]byte(body), "device")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if d.ID != 7 || d.Name != "printer" {
			t.Fatalf("%s: wrong record: %+v", name, d)
		}
	}
}
