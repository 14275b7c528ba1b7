package audit

import (
	"github.com/sirupsen/logrus"
)

// AuthnEvent records an authentication attempt.
type AuthnEvent struct {
	UserID   string
	ClientIP string
	Success  bool
	Error    string
}

func (e AuthnEvent) Message() string {
	if e.Success {
		return "authenticated"
	}
	return "authentication failed"
}

func (e AuthnEvent) Fields() logrus.Fields {
	fields := logrus.Fields{
		"event":     "authn",
		"client_ip": e.ClientIP,
	}
	if e.UserID != "" {
		fields["user_id"] = e.UserID
	}
	if e.Error != "" {
		fields["error"] = e.Error
	}
	return fields
}

func (e AuthnEvent) Succeeded() bool { return e.Success }

// CommandEvent records a command dispatched to a device.
type CommandEvent struct {
	UserID    string
	DeviceID  string
	Command   string
	CommandID string
	Success   bool
	Error     string
}

func (e CommandEvent) Message() string {
	if e.Success {
		return "device command sent"
	}
	return "device command rejected"
}

func (e CommandEvent) Fields() logrus.Fields {
	fields := logrus.Fields{
		"event":     "device_command",
		"user_id":   e.UserID,
		"device_id": e.DeviceID,
		"command":   e.Command,
	}
	if e.CommandID != "" {
		fields["command_id"] = e.CommandID
	}
	if e.Error != "" {
		fields["error"] = e.Error
	}
	return fields
}

func (e CommandEvent) Succeeded() bool { return e.Success }

// WalletEvent records a wallet being linked to an account.
type WalletEvent struct {
	UserID  string
	Address string
	Success bool
	Error   string
}

func (e WalletEvent) Message() string {
	if e.Success {
		return "wallet linked"
	}
	return "wallet link rejected"
}

func (e WalletEvent) Fields() logrus.Fields {
	fields := logrus.Fields{
		"event":   "wallet_link",
		"user_id": e.UserID,
		"address": e.Address,
	}
	if e.Error != "" {
		fields["error"] = e.Error
	}
	return fields
}

func (e WalletEvent) Succeeded() bool { return e.Success }
