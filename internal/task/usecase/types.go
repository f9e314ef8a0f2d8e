package usecase

// DefaultStatus is the status every new task starts in.
const DefaultStatus = "to do"
