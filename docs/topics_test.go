package docs

import (
	"strings"
	"testing"
)

func TestGetTopic(t *testing.T) {
	content, err := GetTopic("stocks")
	if err != nil {
		t.Fatalf("GetTopic(stocks) error = %v", err)
	}
	if !strings.Contains(content, "# The stocks view") {
		t.Errorf("GetTopic(stocks) missing its heading:\n%s", content)
	}

	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic() should fail for an unknown topic")
	}
}

func TestGetTopic_Star(t *testing.T) {
	all, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*) error = %v", err)
	}
	for _, heading := range []string{"# Sessions", "# The stocks view", "# Trading"} {
		if !strings.Contains(all, heading) {
			t.Errorf("GetTopic(*) missing %q", heading)
		}
	}
	// the readme is the landing page, not a topic
	if strings.Contains(all, "# TradeX command-line client") {
		t.Error("GetTopic(*) should not include the readme")
	}
}

func TestGetAllTopics(t *testing.T) {
	topics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	want := []string{"session", "stocks", "trading"}
	if len(topics) != len(want) {
		t.Fatalf("GetAllTopics() = %v, want %v", topics, want)
	}
	for i := range want {
		if topics[i] != want[i] {
			t.Errorf("GetAllTopics()[%d] = %q, want %q", i, topics[i], want[i])
		}
	}
}

func TestTitle(t *testing.T) {
	if got := Title("trading"); got != "Trading" {
		t.Errorf("Title(trading) = %q, want Trading", got)
	}
	// unknown topics fall back to the topic name
	if got := Title("missing"); got != "missing" {
		t.Errorf("Title(missing) = %q, want missing", got)
	}
}
