// Package tracing enables AWS X-Ray tracing of SDK calls.
package tracing

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-xray-sdk-go/instrumentation/awsv2"
)

// Instrument registers the X-Ray middleware on cfg so that every client built
// from it records a subsegment per AWS call.
func Instrument(cfg *aws.Config) {
	awsv2.AWSV2Instrumentor(&cfg.APIOptions)
}
