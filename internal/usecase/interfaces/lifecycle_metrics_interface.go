package interfaces

// ILifecycleMetrics records lifecycle events for operators.
type ILifecycleMetrics interface {
	IncJobCreated()
	IncJobDeleted()
	IncJobStatusChange(from, to string)
	IncQuoteStatus(status string)
	IncIdentityResolved(source string)
	IncAssistantFallback(reason string)
}
