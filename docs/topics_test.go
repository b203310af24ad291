package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"enrichment", "extraction"}
	if !reflect.DeepEqual(topics, want) {
		t.Errorf("GetAllTopics() = %v, want %v", topics, want)
	}
}

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("extraction")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(content, "table") {
		t.Errorf("extraction topic does not mention tables:\n%s", content)
	}

	if _, err := GetTopic("nope"); err == nil {
		t.Error("GetTopic(nope) succeeded, want error")
	}
}

func TestGetTopicsStar(t *testing.T) {
	all, err := GetTopics("*")
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range []string{"enrichment", "extraction"} {
		single, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(all, single) {
			t.Errorf("GetTopics(*) is missing the %s topic", topic)
		}
	}
}
