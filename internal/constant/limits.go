package constant

const (
	// Decoded upload payloads above this size get recompressed before storage.
	COMPRESS_THRESHOLD = 2 * 1024 * 1024

	// Hard cap on a decoded upload payload.
	MAX_UPLOAD_SIZE = 10 * 1024 * 1024

	// Longest dimension and quality used when recompressing oversized images.
	COMPRESS_MAX_DIMENSION = 1920
	COMPRESS_QUALITY       = 80
)
