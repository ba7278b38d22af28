package utils

import "time"

const DateLayout = "2006-01-02"

// ParseDate converte YYYY-MM-DD; string vazia retorna nil sem erro
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
