package booking

import "field-booking/internal/pkg/errs"

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

type Channel string

const (
	ChannelOnline   Channel = "online"
	ChannelInPerson Channel = "in_person"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelOnline, ChannelInPerson:
		return true
	default:
		return false
	}
}

func ParseChannel(s string) (Channel, error) {
	c := Channel(s)
	if !c.IsValid() {
		return "", errs.Newf("unknown channel %q", s)
	}
	return c, nil
}
