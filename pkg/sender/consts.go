package sender

// Maximum number of log messages that can be queued per logger. Producers
// block once the queue is full.
const MessageBufferSize int = 1024
