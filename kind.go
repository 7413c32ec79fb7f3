package toast

import "fmt"

// Kind indicates the severity of a toast.
type Kind int

const (
	KindInfo Kind = iota
	KindWarning
	KindError
	KindSuccess

	// KindCustom is the first application-defined kind. Applications can
	// declare their own kinds as KindCustom + n and register a renderer
	// for them with Toasts.CustomContents.
	KindCustom
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	default:
		return fmt.Sprintf("custom(%d)", int(k-KindCustom))
	}
}
