// Package testutil provides test doubles and fixtures shared by the VoiceMap packages.
//
// Mocks (mock_transcriber.go):
//   - MockTranscriber: configurable pipeline.Transcriber with call tracking
//   - MockGlossMapper: testify mock of pipeline.GlossMapper
//
// Fixtures (fixtures.go):
//   - CreateTestAudioFile: minimal 16kHz mono WAV on disk
//   - MultipartAudio: request body with an `audio` file field
//   - FileHeader: a parsed *multipart.FileHeader for intake tests
//   - ListFiles: directory listing used to assert temp file cleanup
//
// # Usage
//
//	func TestTranscribe(t *testing.T) {
//	    transcriber := testutil.NewMockTranscriber().WithResult("hello world", "en")
//	    body, contentType := testutil.MultipartAudio(t, "audio", "clip.wav", testutil.WavBytes())
//	    // ...
//	}
package testutil
