package usecase

// Export unexported functions for testing
var (
	DownloadZipFileForTest = downloadZipFile
	ExtractZipFileForTest  = extractZipFile
	ScanForFailuresForTest = scanForFailures
)
