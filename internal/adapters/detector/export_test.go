package detector

// Detect exports detect for testing.
var Detect = detect
