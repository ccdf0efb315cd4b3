package bot

import "testing"

func TestRouteMenu(t *testing.T) {
	routes := []string{"22", "30", "30A"}
	menu := routeMenu(routes)

	if len(menu.InlineKeyboard) != 1 {
		t.Fatalf("expected a single row, got %d", len(menu.InlineKeyboard))
	}
	row := menu.InlineKeyboard[0]
	if len(row) != len(routes) {
		t.Fatalf("expected %d buttons, got %d", len(routes), len(row))
	}
	for i, route := range routes {
		if row[i].Text != route {
			t.Errorf("button %d text = %q, want %q", i, row[i].Text, route)
		}
		if row[i].CallbackData == nil || *row[i].CallbackData != route {
			t.Errorf("button %d callback data should be the route name", i)
		}
	}
}

func TestDefaultKeyboard(t *testing.T) {
	kb := defaultKeyboard()
	if !kb.OneTimeKeyboard {
		t.Error("start keyboard should be one-time")
	}
	if len(kb.Keyboard) != 2 {
		t.Fatalf("expected two rows, got %d", len(kb.Keyboard))
	}
	if kb.Keyboard[0][0].Text != "/prognosis" {
		t.Errorf("first button should be /prognosis, got %q", kb.Keyboard[0][0].Text)
	}
}
