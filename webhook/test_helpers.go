package webhook

import "github.com/stretchr/testify/mock"

// MatchLog creates a custom matcher for log arguments in mocks
func MatchLog(matcher func(Log) bool) interface{} {
	return mock.MatchedBy(matcher)
}

// MatchQueueEntry creates a custom matcher for queue entry arguments in mocks
func MatchQueueEntry(matcher func(QueueEntry) bool) interface{} {
	return mock.MatchedBy(matcher)
}

// MatchSendOptions creates a custom matcher for send options in mocks
func MatchSendOptions(matcher func(SendOptions) bool) interface{} {
	return mock.MatchedBy(matcher)
}
