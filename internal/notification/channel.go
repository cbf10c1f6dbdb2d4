package notification

import "fmt"

func channelFor(userID uint) string {
	return fmt.Sprintf("notifications:%d", userID)
}
