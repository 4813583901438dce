package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/lineup/internal/review"
)

// LoadFile evaluates a Lua configuration file on top of the defaults
// and returns the validated result. The script runs in a sandboxed
// state and communicates through globals:
//
//	marks = {
//	    { key = "m", glyph = "*" },
//	    { key = "u", glyph = "?" },
//	}
//	keys = { ["mark.advance"] = " " }
//	searching = true
//	search_url = "https://duckduckgo.com/?q=%s"
//	dictionary_url = "http://host/lexin.html?&dict=nbo-nny-maxi&search="
//	lookup_timeout = "10s"
func LoadFile(path string) (Config, error) {
	c := Default()

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)

	if err := L.DoFile(path); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := applyGlobals(L, &c); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// openSafeLibraries opens only safe Lua standard libraries.
// io, os, debug and package stay closed: a config script has no
// business touching the file system or spawning processes.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// applyGlobals reads the script's globals into the configuration.
func applyGlobals(L *lua.LState, c *Config) error {
	if tbl, ok := L.GetGlobal("marks").(*lua.LTable); ok {
		marks, err := readMarks(tbl)
		if err != nil {
			return err
		}
		c.Marks = marks
	}

	if tbl, ok := L.GetGlobal("keys").(*lua.LTable); ok {
		keys, err := readKeys(tbl)
		if err != nil {
			return err
		}
		c.Keys = keys
	}

	if v := L.GetGlobal("searching"); v != lua.LNil {
		c.Searching = lua.LVAsBool(v)
	}

	if s, ok := L.GetGlobal("abstract_a_url").(lua.LString); ok {
		c.AbstractAEndpoint = string(s)
	}
	if s, ok := L.GetGlobal("abstract_b_url").(lua.LString); ok {
		c.AbstractBEndpoint = string(s)
	}
	if s, ok := L.GetGlobal("search_url").(lua.LString); ok {
		c.SearchURL = string(s)
	}
	if s, ok := L.GetGlobal("dictionary_url").(lua.LString); ok {
		c.DictionaryURL = string(s)
	}

	if s, ok := L.GetGlobal("lookup_timeout").(lua.LString); ok {
		d, err := time.ParseDuration(string(s))
		if err != nil {
			return fmt.Errorf("lookup_timeout: %w", err)
		}
		c.LookupTimeout = d
	}

	return nil
}

// readMarks converts the marks table into alphabet entries.
func readMarks(tbl *lua.LTable) ([]review.Entry, error) {
	var marks []review.Entry
	var readErr error

	tbl.ForEach(func(_, value lua.LValue) {
		if readErr != nil {
			return
		}
		entry, ok := value.(*lua.LTable)
		if !ok {
			readErr = fmt.Errorf("marks: entry %d is not a table", len(marks)+1)
			return
		}

		keyStr := lua.LVAsString(entry.RawGetString("key"))
		key, err := singleRune(keyStr)
		if err != nil {
			readErr = fmt.Errorf("marks: entry %d: %w", len(marks)+1, err)
			return
		}

		marks = append(marks, review.Entry{
			Key:   key,
			Glyph: lua.LVAsString(entry.RawGetString("glyph")),
		})
	})

	return marks, readErr
}

// readKeys converts the keys table into action key overrides.
func readKeys(tbl *lua.LTable) (map[string]rune, error) {
	keys := make(map[string]rune)
	var readErr error

	tbl.ForEach(func(action, value lua.LValue) {
		if readErr != nil {
			return
		}
		trigger, err := singleRune(lua.LVAsString(value))
		if err != nil {
			readErr = fmt.Errorf("keys[%s]: %w", lua.LVAsString(action), err)
			return
		}
		keys[lua.LVAsString(action)] = trigger
	})

	return keys, readErr
}

// singleRune requires a string holding exactly one character.
func singleRune(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if s == "" || size != len(s) || r == utf8.RuneError {
		return 0, fmt.Errorf("%q: %w", s, ErrBadKeyOverride)
	}
	return r, nil
}
