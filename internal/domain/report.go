package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexibleID принимает идентификатор как JSON-строку или JSON-число
type FlexibleID string

func (id *FlexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = FlexibleID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = FlexibleID(n.String())
	return nil
}

func (id FlexibleID) String() string {
	return string(id)
}

// Seconds принимает число секунд как JSON-число или строку; дробная часть отбрасывается
type Seconds int64

func (s *Seconds) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*s = 0
		return nil
	}
	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*s = 0
			return nil
		}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return err
	}
	*s = Seconds(math.Trunc(f))
	return nil
}

type RecordUser struct {
	ID FlexibleID `json:"id"`
}

// TimeRecord - строка отчета time_worked (result и capacity имеют одинаковую форму)
type TimeRecord struct {
	UserID FlexibleID  `json:"user_id"`
	User   *RecordUser `json:"user"`
	Time   Seconds     `json:"time"`
}

type Report struct {
	Records  []TimeRecord
	Capacity []TimeRecord
}

type WorkedCapacity struct {
	PersonID        string
	WorkedSeconds   int64
	CapacitySeconds int64
}
