package snapshot

import "errors"

// ErrFetch возвращается, когда не удалось загрузить данные для расчета доступности
var ErrFetch = errors.New("snapshot: failed to fetch data")
