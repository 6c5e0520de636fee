// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: voters/v1/import.proto

package votersv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ImportJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	AssemblyId    string                 `protobuf:"bytes,2,opt,name=assembly_id,json=assemblyId,proto3" json:"assembly_id,omitempty"`
	FileName      string                 `protobuf:"bytes,3,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FilePath      string                 `protobuf:"bytes,4,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	BoothNumber   int32                  `protobuf:"varint,5,opt,name=booth_number,json=boothNumber,proto3" json:"booth_number,omitempty"`
	BoothName     string                 `protobuf:"bytes,6,opt,name=booth_name,json=boothName,proto3" json:"booth_name,omitempty"`
	CommonAddress string                 `protobuf:"bytes,7,opt,name=common_address,json=commonAddress,proto3" json:"common_address,omitempty"`
	ExpectedCount int32                  `protobuf:"varint,8,opt,name=expected_count,json=expectedCount,proto3" json:"expected_count,omitempty"`
	StartPage     int32                  `protobuf:"varint,9,opt,name=start_page,json=startPage,proto3" json:"start_page,omitempty"`
	EndPage       int32                  `protobuf:"varint,10,opt,name=end_page,json=endPage,proto3" json:"end_page,omitempty"`
	Status        string                 `protobuf:"bytes,11,opt,name=status,proto3" json:"status,omitempty"`
	Progress      int32                  `protobuf:"varint,12,opt,name=progress,proto3" json:"progress,omitempty"`
	TotalVoters   int32                  `protobuf:"varint,13,opt,name=total_voters,json=totalVoters,proto3" json:"total_voters,omitempty"`
	Logs          string                 `protobuf:"bytes,14,opt,name=logs,proto3" json:"logs,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,15,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	AddedAt       string                 `protobuf:"bytes,16,opt,name=added_at,json=addedAt,proto3" json:"added_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,17,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	CompletedAt   string                 `protobuf:"bytes,18,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportJob) Reset() {
	*x = ImportJob{}
	mi := &file_voters_v1_import_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportJob) ProtoMessage() {}

func (x *ImportJob) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportJob.ProtoReflect.Descriptor instead.
func (*ImportJob) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{0}
}

func (x *ImportJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ImportJob) GetAssemblyId() string {
	if x != nil {
		return x.AssemblyId
	}
	return ""
}

func (x *ImportJob) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *ImportJob) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *ImportJob) GetBoothNumber() int32 {
	if x != nil {
		return x.BoothNumber
	}
	return 0
}

func (x *ImportJob) GetBoothName() string {
	if x != nil {
		return x.BoothName
	}
	return ""
}

func (x *ImportJob) GetCommonAddress() string {
	if x != nil {
		return x.CommonAddress
	}
	return ""
}

func (x *ImportJob) GetExpectedCount() int32 {
	if x != nil {
		return x.ExpectedCount
	}
	return 0
}

func (x *ImportJob) GetStartPage() int32 {
	if x != nil {
		return x.StartPage
	}
	return 0
}

func (x *ImportJob) GetEndPage() int32 {
	if x != nil {
		return x.EndPage
	}
	return 0
}

func (x *ImportJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportJob) GetProgress() int32 {
	if x != nil {
		return x.Progress
	}
	return 0
}

func (x *ImportJob) GetTotalVoters() int32 {
	if x != nil {
		return x.TotalVoters
	}
	return 0
}

func (x *ImportJob) GetLogs() string {
	if x != nil {
		return x.Logs
	}
	return ""
}

func (x *ImportJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ImportJob) GetAddedAt() string {
	if x != nil {
		return x.AddedAt
	}
	return ""
}

func (x *ImportJob) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *ImportJob) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

type CreateImportJobRequest struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	AssemblyName   string                 `protobuf:"bytes,1,opt,name=assembly_name,json=assemblyName,proto3" json:"assembly_name,omitempty"`
	AssemblyNumber int32                  `protobuf:"varint,2,opt,name=assembly_number,json=assemblyNumber,proto3" json:"assembly_number,omitempty"`
	FilePath       string                 `protobuf:"bytes,3,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	BoothNumber    int32                  `protobuf:"varint,4,opt,name=booth_number,json=boothNumber,proto3" json:"booth_number,omitempty"`
	BoothName      string                 `protobuf:"bytes,5,opt,name=booth_name,json=boothName,proto3" json:"booth_name,omitempty"`
	CommonAddress  string                 `protobuf:"bytes,6,opt,name=common_address,json=commonAddress,proto3" json:"common_address,omitempty"`
	ExpectedCount  int32                  `protobuf:"varint,7,opt,name=expected_count,json=expectedCount,proto3" json:"expected_count,omitempty"`
	StartPage      int32                  `protobuf:"varint,8,opt,name=start_page,json=startPage,proto3" json:"start_page,omitempty"`
	EndPage        int32                  `protobuf:"varint,9,opt,name=end_page,json=endPage,proto3" json:"end_page,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *CreateImportJobRequest) Reset() {
	*x = CreateImportJobRequest{}
	mi := &file_voters_v1_import_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateImportJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateImportJobRequest) ProtoMessage() {}

func (x *CreateImportJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateImportJobRequest.ProtoReflect.Descriptor instead.
func (*CreateImportJobRequest) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{1}
}

func (x *CreateImportJobRequest) GetAssemblyName() string {
	if x != nil {
		return x.AssemblyName
	}
	return ""
}

func (x *CreateImportJobRequest) GetAssemblyNumber() int32 {
	if x != nil {
		return x.AssemblyNumber
	}
	return 0
}

func (x *CreateImportJobRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *CreateImportJobRequest) GetBoothNumber() int32 {
	if x != nil {
		return x.BoothNumber
	}
	return 0
}

func (x *CreateImportJobRequest) GetBoothName() string {
	if x != nil {
		return x.BoothName
	}
	return ""
}

func (x *CreateImportJobRequest) GetCommonAddress() string {
	if x != nil {
		return x.CommonAddress
	}
	return ""
}

func (x *CreateImportJobRequest) GetExpectedCount() int32 {
	if x != nil {
		return x.ExpectedCount
	}
	return 0
}

func (x *CreateImportJobRequest) GetStartPage() int32 {
	if x != nil {
		return x.StartPage
	}
	return 0
}

func (x *CreateImportJobRequest) GetEndPage() int32 {
	if x != nil {
		return x.EndPage
	}
	return 0
}

type CreateImportJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ImportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateImportJobResponse) Reset() {
	*x = CreateImportJobResponse{}
	mi := &file_voters_v1_import_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateImportJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateImportJobResponse) ProtoMessage() {}

func (x *CreateImportJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateImportJobResponse.ProtoReflect.Descriptor instead.
func (*CreateImportJobResponse) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{2}
}

func (x *CreateImportJobResponse) GetJob() *ImportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetImportJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportJobRequest) Reset() {
	*x = GetImportJobRequest{}
	mi := &file_voters_v1_import_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportJobRequest) ProtoMessage() {}

func (x *GetImportJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportJobRequest.ProtoReflect.Descriptor instead.
func (*GetImportJobRequest) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{3}
}

func (x *GetImportJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetImportJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ImportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportJobResponse) Reset() {
	*x = GetImportJobResponse{}
	mi := &file_voters_v1_import_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportJobResponse) ProtoMessage() {}

func (x *GetImportJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportJobResponse.ProtoReflect.Descriptor instead.
func (*GetImportJobResponse) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{4}
}

func (x *GetImportJobResponse) GetJob() *ImportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListImportJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AssemblyId    string                 `protobuf:"bytes,1,opt,name=assembly_id,json=assemblyId,proto3" json:"assembly_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32                  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListImportJobsRequest) Reset() {
	*x = ListImportJobsRequest{}
	mi := &file_voters_v1_import_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListImportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListImportJobsRequest) ProtoMessage() {}

func (x *ListImportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListImportJobsRequest.ProtoReflect.Descriptor instead.
func (*ListImportJobsRequest) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{5}
}

func (x *ListImportJobsRequest) GetAssemblyId() string {
	if x != nil {
		return x.AssemblyId
	}
	return ""
}

func (x *ListImportJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListImportJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListImportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ImportJob           `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListImportJobsResponse) Reset() {
	*x = ListImportJobsResponse{}
	mi := &file_voters_v1_import_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListImportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListImportJobsResponse) ProtoMessage() {}

func (x *ListImportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListImportJobsResponse.ProtoReflect.Descriptor instead.
func (*ListImportJobsResponse) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{6}
}

func (x *ListImportJobsResponse) GetJobs() []*ImportJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportVotersRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AssemblyId    string                 `protobuf:"bytes,1,opt,name=assembly_id,json=assemblyId,proto3" json:"assembly_id,omitempty"`
	Village       string                 `protobuf:"bytes,2,opt,name=village,proto3" json:"village,omitempty"`
	BoothNumber   int32                  `protobuf:"varint,3,opt,name=booth_number,json=boothNumber,proto3" json:"booth_number,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVotersRequest) Reset() {
	*x = ExportVotersRequest{}
	mi := &file_voters_v1_import_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVotersRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVotersRequest) ProtoMessage() {}

func (x *ExportVotersRequest) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVotersRequest.ProtoReflect.Descriptor instead.
func (*ExportVotersRequest) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{7}
}

func (x *ExportVotersRequest) GetAssemblyId() string {
	if x != nil {
		return x.AssemblyId
	}
	return ""
}

func (x *ExportVotersRequest) GetVillage() string {
	if x != nil {
		return x.Village
	}
	return ""
}

func (x *ExportVotersRequest) GetBoothNumber() int32 {
	if x != nil {
		return x.BoothNumber
	}
	return 0
}

type ExportVotersResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportVotersResponse) Reset() {
	*x = ExportVotersResponse{}
	mi := &file_voters_v1_import_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportVotersResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportVotersResponse) ProtoMessage() {}

func (x *ExportVotersResponse) ProtoReflect() protoreflect.Message {
	mi := &file_voters_v1_import_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportVotersResponse.ProtoReflect.Descriptor instead.
func (*ExportVotersResponse) Descriptor() ([]byte, []int) {
	return file_voters_v1_import_proto_rawDescGZIP(), []int{8}
}

func (x *ExportVotersResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_voters_v1_import_proto protoreflect.FileDescriptor

const file_voters_v1_import_proto_rawDesc = "" +
	"\n" +
	"\x16voters/v1/import.proto\x12\tvoters.v1\"\xad\x04\n" +
	"\tImportJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vassembly_id\x18\x02 \x01(\tR\n" +
	"assemblyId\x12\x1b\n" +
	"\tfile_name\x18\x03 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_path\x18\x04 \x01(\tR\bfilePath\x12!\n" +
	"\fbooth_number\x18\x05 \x01(\x05R\vboothNumber\x12\x1d\n" +
	"\n" +
	"booth_name\x18\x06 \x01(\tR\tboothName\x12%\n" +
	"\x0ecommon_address\x18\a \x01(\tR\rcommonAddress\x12%\n" +
	"\x0eexpected_count\x18\b \x01(\x05R\rexpectedCount\x12\x1d\n" +
	"\n" +
	"start_page\x18\t \x01(\x05R\tstartPage\x12\x19\n" +
	"\bend_page\x18\n" +
	" \x01(\x05R\aendPage\x12\x16\n" +
	"\x06status\x18\v \x01(\tR\x06status\x12\x1a\n" +
	"\bprogress\x18\f \x01(\x05R\bprogress\x12!\n" +
	"\ftotal_voters\x18\r \x01(\x05R\vtotalVoters\x12\x12\n" +
	"\x04logs\x18\x0e \x01(\tR\x04logs\x12#\n" +
	"\rerror_message\x18\x0f \x01(\tR\ferrorMessage\x12\x19\n" +
	"\badded_at\x18\x10 \x01(\tR\aaddedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x11 \x01(\tR\tupdatedAt\x12!\n" +
	"\fcompleted_at\x18\x12 \x01(\tR\vcompletedAt\"\xcd\x02\n" +
	"\x16CreateImportJobRequest\x12#\n" +
	"\rassembly_name\x18\x01 \x01(\tR\fassemblyName\x12'\n" +
	"\x0fassembly_number\x18\x02 \x01(\x05R\x0eassemblyNumber\x12\x1b\n" +
	"\tfile_path\x18\x03 \x01(\tR\bfilePath\x12!\n" +
	"\fbooth_number\x18\x04 \x01(\x05R\vboothNumber\x12\x1d\n" +
	"\n" +
	"booth_name\x18\x05 \x01(\tR\tboothName\x12%\n" +
	"\x0ecommon_address\x18\x06 \x01(\tR\rcommonAddress\x12%\n" +
	"\x0eexpected_count\x18\a \x01(\x05R\rexpectedCount\x12\x1d\n" +
	"\n" +
	"start_page\x18\b \x01(\x05R\tstartPage\x12\x19\n" +
	"\bend_page\x18\t \x01(\x05R\aendPage\"A\n" +
	"\x17CreateImportJobResponse\x12&\n" +
	"\x03job\x18\x01 \x01(\v2\x14.voters.v1.ImportJobR\x03job\",\n" +
	"\x13GetImportJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\">\n" +
	"\x14GetImportJobResponse\x12&\n" +
	"\x03job\x18\x01 \x01(\v2\x14.voters.v1.ImportJobR\x03job\"f\n" +
	"\x15ListImportJobsRequest\x12\x1f\n" +
	"\vassembly_id\x18\x01 \x01(\tR\n" +
	"assemblyId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"B\n" +
	"\x16ListImportJobsResponse\x12(\n" +
	"\x04jobs\x18\x01 \x03(\v2\x14.voters.v1.ImportJobR\x04jobs\"s\n" +
	"\x13ExportVotersRequest\x12\x1f\n" +
	"\vassembly_id\x18\x01 \x01(\tR\n" +
	"assemblyId\x12\x18\n" +
	"\avillage\x18\x02 \x01(\tR\avillage\x12!\n" +
	"\fbooth_number\x18\x03 \x01(\x05R\vboothNumber\"*\n" +
	"\x14ExportVotersResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xe2\x02\n" +
	"\rImportService\x12X\n" +
	"\x0fCreateImportJob\x12!.voters.v1.CreateImportJobRequest\x1a\".voters.v1.CreateImportJobResponse\x12O\n" +
	"\fGetImportJob\x12\x1e.voters.v1.GetImportJobRequest\x1a\x1f.voters.v1.GetImportJobResponse\x12U\n" +
	"\x0eListImportJobs\x12 .voters.v1.ListImportJobsRequest\x1a!.voters.v1.ListImportJobsResponse\x12O\n" +
	"\fExportVoters\x12\x1e.voters.v1.ExportVotersRequest\x1a\x1f.voters.v1.ExportVotersResponseBBZ@github.com/voteraction/voter-ingest/gen/proto/voters/v1;votersv1b\x06proto3"

var (
	file_voters_v1_import_proto_rawDescOnce sync.Once
	file_voters_v1_import_proto_rawDescData []byte
)

func file_voters_v1_import_proto_rawDescGZIP() []byte {
	file_voters_v1_import_proto_rawDescOnce.Do(func() {
		file_voters_v1_import_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_voters_v1_import_proto_rawDesc), len(file_voters_v1_import_proto_rawDesc)))
	})
	return file_voters_v1_import_proto_rawDescData
}

var file_voters_v1_import_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_voters_v1_import_proto_goTypes = []any{
	(*ImportJob)(nil),               // 0: voters.v1.ImportJob
	(*CreateImportJobRequest)(nil),  // 1: voters.v1.CreateImportJobRequest
	(*CreateImportJobResponse)(nil), // 2: voters.v1.CreateImportJobResponse
	(*GetImportJobRequest)(nil),     // 3: voters.v1.GetImportJobRequest
	(*GetImportJobResponse)(nil),    // 4: voters.v1.GetImportJobResponse
	(*ListImportJobsRequest)(nil),   // 5: voters.v1.ListImportJobsRequest
	(*ListImportJobsResponse)(nil),  // 6: voters.v1.ListImportJobsResponse
	(*ExportVotersRequest)(nil),     // 7: voters.v1.ExportVotersRequest
	(*ExportVotersResponse)(nil),    // 8: voters.v1.ExportVotersResponse
}
var file_voters_v1_import_proto_depIdxs = []int32{
	0, // 0: voters.v1.CreateImportJobResponse.job:type_name -> voters.v1.ImportJob
	0, // 1: voters.v1.GetImportJobResponse.job:type_name -> voters.v1.ImportJob
	0, // 2: voters.v1.ListImportJobsResponse.jobs:type_name -> voters.v1.ImportJob
	1, // 3: voters.v1.ImportService.CreateImportJob:input_type -> voters.v1.CreateImportJobRequest
	3, // 4: voters.v1.ImportService.GetImportJob:input_type -> voters.v1.GetImportJobRequest
	5, // 5: voters.v1.ImportService.ListImportJobs:input_type -> voters.v1.ListImportJobsRequest
	7, // 6: voters.v1.ImportService.ExportVoters:input_type -> voters.v1.ExportVotersRequest
	2, // 7: voters.v1.ImportService.CreateImportJob:output_type -> voters.v1.CreateImportJobResponse
	4, // 8: voters.v1.ImportService.GetImportJob:output_type -> voters.v1.GetImportJobResponse
	6, // 9: voters.v1.ImportService.ListImportJobs:output_type -> voters.v1.ListImportJobsResponse
	8, // 10: voters.v1.ImportService.ExportVoters:output_type -> voters.v1.ExportVotersResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_voters_v1_import_proto_init() }
func file_voters_v1_import_proto_init() {
	if File_voters_v1_import_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_voters_v1_import_proto_rawDesc), len(file_voters_v1_import_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_voters_v1_import_proto_goTypes,
		DependencyIndexes: file_voters_v1_import_proto_depIdxs,
		MessageInfos:      file_voters_v1_import_proto_msgTypes,
	}.Build()
	File_voters_v1_import_proto = out.File
	file_voters_v1_import_proto_goTypes = nil
	file_voters_v1_import_proto_depIdxs = nil
}
