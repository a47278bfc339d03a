// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.31.0
// 	protoc        (unknown)
// source: lensd.proto

package lensdpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// DisplayClientMessage is a message sent by the client to the server.
type DisplayClientMessage struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Types that are assignable to Message:
	//
	//	*DisplayClientMessage_Authenticate
	//	*DisplayClientMessage_GetShapeInfo
	//	*DisplayClientMessage_GetFrame
	//	*DisplayClientMessage_SetFrame
	//	*DisplayClientMessage_Fill
	//	*DisplayClientMessage_PlayAnimation
	Message isDisplayClientMessage_Message `protobuf_oneof:"message"`
}

func (x *DisplayClientMessage) Reset() {
	*x = DisplayClientMessage{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DisplayClientMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisplayClientMessage) ProtoMessage() {}

func (x *DisplayClientMessage) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisplayClientMessage.ProtoReflect.Descriptor instead.
func (*DisplayClientMessage) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{0}
}

func (m *DisplayClientMessage) GetMessage() isDisplayClientMessage_Message {
	if m != nil {
		return m.Message
	}
	return nil
}

func (x *DisplayClientMessage) GetAuthenticate() *AuthenticateRequest {
	if x, ok := x.GetMessage().(*DisplayClientMessage_Authenticate); ok {
		return x.Authenticate
	}
	return nil
}

func (x *DisplayClientMessage) GetGetShapeInfo() *GetShapeInfoRequest {
	if x, ok := x.GetMessage().(*DisplayClientMessage_GetShapeInfo); ok {
		return x.GetShapeInfo
	}
	return nil
}

func (x *DisplayClientMessage) GetGetFrame() *GetFrameRequest {
	if x, ok := x.GetMessage().(*DisplayClientMessage_GetFrame); ok {
		return x.GetFrame
	}
	return nil
}

func (x *DisplayClientMessage) GetSetFrame() *SetFrameRequest {
	if x, ok := x.GetMessage().(*DisplayClientMessage_SetFrame); ok {
		return x.SetFrame
	}
	return nil
}

func (x *DisplayClientMessage) GetFill() *FillRequest {
	if x, ok := x.GetMessage().(*DisplayClientMessage_Fill); ok {
		return x.Fill
	}
	return nil
}

func (x *DisplayClientMessage) GetPlayAnimation() *PlayAnimationRequest {
	if x, ok := x.GetMessage().(*DisplayClientMessage_PlayAnimation); ok {
		return x.PlayAnimation
	}
	return nil
}

type isDisplayClientMessage_Message interface {
	isDisplayClientMessage_Message()
}

type DisplayClientMessage_Authenticate struct {
	Authenticate *AuthenticateRequest `protobuf:"bytes,1,opt,name=authenticate,proto3,oneof"`
}

type DisplayClientMessage_GetShapeInfo struct {
	GetShapeInfo *GetShapeInfoRequest `protobuf:"bytes,2,opt,name=get_shape_info,json=getShapeInfo,proto3,oneof"`
}

type DisplayClientMessage_GetFrame struct {
	GetFrame *GetFrameRequest `protobuf:"bytes,3,opt,name=get_frame,json=getFrame,proto3,oneof"`
}

type DisplayClientMessage_SetFrame struct {
	SetFrame *SetFrameRequest `protobuf:"bytes,4,opt,name=set_frame,json=setFrame,proto3,oneof"`
}

type DisplayClientMessage_Fill struct {
	Fill *FillRequest `protobuf:"bytes,5,opt,name=fill,proto3,oneof"`
}

type DisplayClientMessage_PlayAnimation struct {
	PlayAnimation *PlayAnimationRequest `protobuf:"bytes,6,opt,name=play_animation,json=playAnimation,proto3,oneof"`
}

func (*DisplayClientMessage_Authenticate) isDisplayClientMessage_Message() {}

func (*DisplayClientMessage_GetShapeInfo) isDisplayClientMessage_Message() {}

func (*DisplayClientMessage_GetFrame) isDisplayClientMessage_Message() {}

func (*DisplayClientMessage_SetFrame) isDisplayClientMessage_Message() {}

func (*DisplayClientMessage_Fill) isDisplayClientMessage_Message() {}

func (*DisplayClientMessage_PlayAnimation) isDisplayClientMessage_Message() {}

// DisplayServerMessage is a message sent by the server to the client.
// If error is set, the server closes the connection after delivery.
type DisplayServerMessage struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Types that are assignable to Message:
	//
	//	*DisplayServerMessage_Authenticate
	//	*DisplayServerMessage_GetShapeInfo
	//	*DisplayServerMessage_GetFrame
	Message isDisplayServerMessage_Message `protobuf_oneof:"message"`
	Error   *string                        `protobuf:"bytes,100,opt,name=error,proto3,oneof" json:"error,omitempty"`
}

func (x *DisplayServerMessage) Reset() {
	*x = DisplayServerMessage{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *DisplayServerMessage) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DisplayServerMessage) ProtoMessage() {}

func (x *DisplayServerMessage) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DisplayServerMessage.ProtoReflect.Descriptor instead.
func (*DisplayServerMessage) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{1}
}

func (m *DisplayServerMessage) GetMessage() isDisplayServerMessage_Message {
	if m != nil {
		return m.Message
	}
	return nil
}

func (x *DisplayServerMessage) GetAuthenticate() *AuthenticateResponse {
	if x, ok := x.GetMessage().(*DisplayServerMessage_Authenticate); ok {
		return x.Authenticate
	}
	return nil
}

func (x *DisplayServerMessage) GetGetShapeInfo() *GetShapeInfoResponse {
	if x, ok := x.GetMessage().(*DisplayServerMessage_GetShapeInfo); ok {
		return x.GetShapeInfo
	}
	return nil
}

func (x *DisplayServerMessage) GetGetFrame() *GetFrameResponse {
	if x, ok := x.GetMessage().(*DisplayServerMessage_GetFrame); ok {
		return x.GetFrame
	}
	return nil
}

func (x *DisplayServerMessage) GetError() string {
	if x != nil && x.Error != nil {
		return *x.Error
	}
	return ""
}

type isDisplayServerMessage_Message interface {
	isDisplayServerMessage_Message()
}

type DisplayServerMessage_Authenticate struct {
	Authenticate *AuthenticateResponse `protobuf:"bytes,1,opt,name=authenticate,proto3,oneof"`
}

type DisplayServerMessage_GetShapeInfo struct {
	GetShapeInfo *GetShapeInfoResponse `protobuf:"bytes,2,opt,name=get_shape_info,json=getShapeInfo,proto3,oneof"`
}

type DisplayServerMessage_GetFrame struct {
	GetFrame *GetFrameResponse `protobuf:"bytes,3,opt,name=get_frame,json=getFrame,proto3,oneof"`
}

func (*DisplayServerMessage_Authenticate) isDisplayServerMessage_Message() {}

func (*DisplayServerMessage_GetShapeInfo) isDisplayServerMessage_Message() {}

func (*DisplayServerMessage_GetFrame) isDisplayServerMessage_Message() {}

type AuthenticateRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Secret string `protobuf:"bytes,1,opt,name=secret,proto3" json:"secret,omitempty"`
}

func (x *AuthenticateRequest) Reset() {
	*x = AuthenticateRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AuthenticateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthenticateRequest) ProtoMessage() {}

func (x *AuthenticateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthenticateRequest.ProtoReflect.Descriptor instead.
func (*AuthenticateRequest) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{2}
}

func (x *AuthenticateRequest) GetSecret() string {
	if x != nil {
		return x.Secret
	}
	return ""
}

type AuthenticateResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success bool `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
}

func (x *AuthenticateResponse) Reset() {
	*x = AuthenticateResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AuthenticateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AuthenticateResponse) ProtoMessage() {}

func (x *AuthenticateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AuthenticateResponse.ProtoReflect.Descriptor instead.
func (*AuthenticateResponse) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{3}
}

func (x *AuthenticateResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

type GetShapeInfoRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *GetShapeInfoRequest) Reset() {
	*x = GetShapeInfoRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetShapeInfoRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetShapeInfoRequest) ProtoMessage() {}

func (x *GetShapeInfoRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetShapeInfoRequest.ProtoReflect.Descriptor instead.
func (*GetShapeInfoRequest) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{4}
}

// GetShapeInfoResponse describes the display shape: the logical grid
// dimensions plus the real-pixel width and starting column of each row.
type GetShapeInfoResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Rows       uint32   `protobuf:"varint,1,opt,name=rows,proto3" json:"rows,omitempty"`
	Cols       uint32   `protobuf:"varint,2,opt,name=cols,proto3" json:"cols,omitempty"`
	RowWidths  []uint32 `protobuf:"varint,3,rep,packed,name=row_widths,json=rowWidths,proto3" json:"row_widths,omitempty"`
	RowOffsets []uint32 `protobuf:"varint,4,rep,packed,name=row_offsets,json=rowOffsets,proto3" json:"row_offsets,omitempty"`
}

func (x *GetShapeInfoResponse) Reset() {
	*x = GetShapeInfoResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetShapeInfoResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetShapeInfoResponse) ProtoMessage() {}

func (x *GetShapeInfoResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetShapeInfoResponse.ProtoReflect.Descriptor instead.
func (*GetShapeInfoResponse) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{5}
}

func (x *GetShapeInfoResponse) GetRows() uint32 {
	if x != nil {
		return x.Rows
	}
	return 0
}

func (x *GetShapeInfoResponse) GetCols() uint32 {
	if x != nil {
		return x.Cols
	}
	return 0
}

func (x *GetShapeInfoResponse) GetRowWidths() []uint32 {
	if x != nil {
		return x.RowWidths
	}
	return nil
}

func (x *GetShapeInfoResponse) GetRowOffsets() []uint32 {
	if x != nil {
		return x.RowOffsets
	}
	return nil
}

type GetFrameRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *GetFrameRequest) Reset() {
	*x = GetFrameRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetFrameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFrameRequest) ProtoMessage() {}

func (x *GetFrameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFrameRequest.ProtoReflect.Descriptor instead.
func (*GetFrameRequest) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{6}
}

// GetFrameResponse carries the current flat buffer, row-major, 625 cells.
type GetFrameResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Pixels []uint32 `protobuf:"varint,1,rep,packed,name=pixels,proto3" json:"pixels,omitempty"`
}

func (x *GetFrameResponse) Reset() {
	*x = GetFrameResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetFrameResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetFrameResponse) ProtoMessage() {}

func (x *GetFrameResponse) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetFrameResponse.ProtoReflect.Descriptor instead.
func (*GetFrameResponse) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{7}
}

func (x *GetFrameResponse) GetPixels() []uint32 {
	if x != nil {
		return x.Pixels
	}
	return nil
}

// SetFrameRequest replaces the displayed frame. Exactly 625 cells.
type SetFrameRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Pixels []uint32 `protobuf:"varint,1,rep,packed,name=pixels,proto3" json:"pixels,omitempty"`
}

func (x *SetFrameRequest) Reset() {
	*x = SetFrameRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SetFrameRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFrameRequest) ProtoMessage() {}

func (x *SetFrameRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFrameRequest.ProtoReflect.Descriptor instead.
func (*SetFrameRequest) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{8}
}

func (x *SetFrameRequest) GetPixels() []uint32 {
	if x != nil {
		return x.Pixels
	}
	return nil
}

// FillRequest sets every cell to one brightness.
type FillRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Brightness uint32 `protobuf:"varint,1,opt,name=brightness,proto3" json:"brightness,omitempty"`
}

func (x *FillRequest) Reset() {
	*x = FillRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *FillRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FillRequest) ProtoMessage() {}

func (x *FillRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FillRequest.ProtoReflect.Descriptor instead.
func (*FillRequest) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{9}
}

func (x *FillRequest) GetBrightness() uint32 {
	if x != nil {
		return x.Brightness
	}
	return 0
}

// PlayAnimationRequest starts a generated animation on the display,
// replacing any animation already playing.
type PlayAnimationRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name       string `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	FrameCount uint32 `protobuf:"varint,2,opt,name=frame_count,json=frameCount,proto3" json:"frame_count,omitempty"`
	Brightness uint32 `protobuf:"varint,3,opt,name=brightness,proto3" json:"brightness,omitempty"`
}

func (x *PlayAnimationRequest) Reset() {
	*x = PlayAnimationRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_lensd_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PlayAnimationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PlayAnimationRequest) ProtoMessage() {}

func (x *PlayAnimationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_lensd_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PlayAnimationRequest.ProtoReflect.Descriptor instead.
func (*PlayAnimationRequest) Descriptor() ([]byte, []int) {
	return file_lensd_proto_rawDescGZIP(), []int{10}
}

func (x *PlayAnimationRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *PlayAnimationRequest) GetFrameCount() uint32 {
	if x != nil {
		return x.FrameCount
	}
	return 0
}

func (x *PlayAnimationRequest) GetBrightness() uint32 {
	if x != nil {
		return x.Brightness
	}
	return 0
}

var File_lensd_proto protoreflect.FileDescriptor

var file_lensd_proto_rawDesc = []byte{
	0x0a, 0x0b, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x05, 0x6c,
	0x65, 0x6e, 0x73, 0x64, 0x22, 0x85, 0x03, 0x0a, 0x14, 0x44, 0x69, 0x73, 0x70, 0x6c, 0x61, 0x79,
	0x43, 0x6c, 0x69, 0x65, 0x6e, 0x74, 0x4d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x40, 0x0a,
	0x0c, 0x61, 0x75, 0x74, 0x68, 0x65, 0x6e, 0x74, 0x69, 0x63, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e, 0x41, 0x75, 0x74, 0x68,
	0x65, 0x6e, 0x74, 0x69, 0x63, 0x61, 0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x48,
	0x00, 0x52, 0x0c, 0x61, 0x75, 0x74, 0x68, 0x65, 0x6e, 0x74, 0x69, 0x63, 0x61, 0x74, 0x65, 0x12,
	0x42, 0x0a, 0x0e, 0x67, 0x65, 0x74, 0x5f, 0x73, 0x68, 0x61, 0x70, 0x65, 0x5f, 0x69, 0x6e, 0x66,
	0x6f, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1a, 0x2e, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e,
	0x47, 0x65, 0x74, 0x53, 0x68, 0x61, 0x70, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x48, 0x00, 0x52, 0x0c, 0x67, 0x65, 0x74, 0x53, 0x68, 0x61, 0x70, 0x65, 0x49,
	0x6e, 0x66, 0x6f, 0x12, 0x35, 0x0a, 0x09, 0x67, 0x65, 0x74, 0x5f, 0x66, 0x72, 0x61, 0x6d, 0x65,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e, 0x47,
	0x65, 0x74, 0x46, 0x72, 0x61, 0x6d, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x48, 0x00,
	0x52, 0x08, 0x67, 0x65, 0x74, 0x46, 0x72, 0x61, 0x6d, 0x65, 0x12, 0x35, 0x0a, 0x09, 0x73, 0x65,
	0x74, 0x5f, 0x66, 0x72, 0x61, 0x6d, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x16, 0x2e,
	0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e, 0x53, 0x65, 0x74, 0x46, 0x72, 0x61, 0x6d, 0x65, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x48, 0x00, 0x52, 0x08, 0x73, 0x65, 0x74, 0x46, 0x72, 0x61, 0x6d,
	0x65, 0x12, 0x28, 0x0a, 0x04, 0x66, 0x69, 0x6c, 0x6c, 0x18, 0x05, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x12, 0x2e, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e, 0x46, 0x69, 0x6c, 0x6c, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x48, 0x00, 0x52, 0x04, 0x66, 0x69, 0x6c, 0x6c, 0x12, 0x44, 0x0a, 0x0e, 0x70,
	0x6c, 0x61, 0x79, 0x5f, 0x61, 0x6e, 0x69, 0x6d, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x06, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x1b, 0x2e, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e, 0x50, 0x6c, 0x61, 0x79,
	0x41, 0x6e, 0x69, 0x6d, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x48, 0x00, 0x52, 0x0d, 0x70, 0x6c, 0x61, 0x79, 0x41, 0x6e, 0x69, 0x6d, 0x61, 0x74, 0x69, 0x6f,
	0x6e, 0x42, 0x09, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x22, 0x86, 0x02, 0x0a,
	0x14, 0x44, 0x69, 0x73, 0x70, 0x6c, 0x61, 0x79, 0x53, 0x65, 0x72, 0x76, 0x65, 0x72, 0x4d, 0x65,
	0x73, 0x73, 0x61, 0x67, 0x65, 0x12, 0x41, 0x0a, 0x0c, 0x61, 0x75, 0x74, 0x68, 0x65, 0x6e, 0x74,
	0x69, 0x63, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x1b, 0x2e, 0x6c, 0x65,
	0x6e, 0x73, 0x64, 0x2e, 0x41, 0x75, 0x74, 0x68, 0x65, 0x6e, 0x74, 0x69, 0x63, 0x61, 0x74, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x48, 0x00, 0x52, 0x0c, 0x61, 0x75, 0x74, 0x68,
	0x65, 0x6e, 0x74, 0x69, 0x63, 0x61, 0x74, 0x65, 0x12, 0x43, 0x0a, 0x0e, 0x67, 0x65, 0x74, 0x5f,
	0x73, 0x68, 0x61, 0x70, 0x65, 0x5f, 0x69, 0x6e, 0x66, 0x6f, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1b, 0x2e, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e, 0x47, 0x65, 0x74, 0x53, 0x68, 0x61, 0x70,
	0x65, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x48, 0x00, 0x52,
	0x0c, 0x67, 0x65, 0x74, 0x53, 0x68, 0x61, 0x70, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x12, 0x36, 0x0a,
	0x09, 0x67, 0x65, 0x74, 0x5f, 0x66, 0x72, 0x61, 0x6d, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x17, 0x2e, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x2e, 0x47, 0x65, 0x74, 0x46, 0x72, 0x61, 0x6d,
	0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x48, 0x00, 0x52, 0x08, 0x67, 0x65, 0x74,
	0x46, 0x72, 0x61, 0x6d, 0x65, 0x12, 0x19, 0x0a, 0x05, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x18, 0x64,
	0x20, 0x01, 0x28, 0x09, 0x48, 0x01, 0x52, 0x05, 0x65, 0x72, 0x72, 0x6f, 0x72, 0x88, 0x01, 0x01,
	0x42, 0x09, 0x0a, 0x07, 0x6d, 0x65, 0x73, 0x73, 0x61, 0x67, 0x65, 0x42, 0x08, 0x0a, 0x06, 0x5f,
	0x65, 0x72, 0x72, 0x6f, 0x72, 0x22, 0x2d, 0x0a, 0x13, 0x41, 0x75, 0x74, 0x68, 0x65, 0x6e, 0x74,
	0x69, 0x63, 0x61, 0x74, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x16, 0x0a, 0x06,
	0x73, 0x65, 0x63, 0x72, 0x65, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x73, 0x65,
	0x63, 0x72, 0x65, 0x74, 0x22, 0x30, 0x0a, 0x14, 0x41, 0x75, 0x74, 0x68, 0x65, 0x6e, 0x74, 0x69,
	0x63, 0x61, 0x74, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18, 0x0a, 0x07,
	0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x73,
	0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x22, 0x15, 0x0a, 0x13, 0x47, 0x65, 0x74, 0x53, 0x68, 0x61,
	0x70, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x7e, 0x0a,
	0x14, 0x47, 0x65, 0x74, 0x53, 0x68, 0x61, 0x70, 0x65, 0x49, 0x6e, 0x66, 0x6f, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x72, 0x6f, 0x77, 0x73, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x0d, 0x52, 0x04, 0x72, 0x6f, 0x77, 0x73, 0x12, 0x12, 0x0a, 0x04, 0x63, 0x6f, 0x6c,
	0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x04, 0x63, 0x6f, 0x6c, 0x73, 0x12, 0x1d, 0x0a,
	0x0a, 0x72, 0x6f, 0x77, 0x5f, 0x77, 0x69, 0x64, 0x74, 0x68, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28,
	0x0d, 0x52, 0x09, 0x72, 0x6f, 0x77, 0x57, 0x69, 0x64, 0x74, 0x68, 0x73, 0x12, 0x1f, 0x0a, 0x0b,
	0x72, 0x6f, 0x77, 0x5f, 0x6f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28,
	0x0d, 0x52, 0x0a, 0x72, 0x6f, 0x77, 0x4f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x73, 0x22, 0x11, 0x0a,
	0x0f, 0x47, 0x65, 0x74, 0x46, 0x72, 0x61, 0x6d, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x22, 0x2a, 0x0a, 0x10, 0x47, 0x65, 0x74, 0x46, 0x72, 0x61, 0x6d, 0x65, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x70, 0x69, 0x78, 0x65, 0x6c, 0x73, 0x18, 0x01,
	0x20, 0x03, 0x28, 0x0d, 0x52, 0x06, 0x70, 0x69, 0x78, 0x65, 0x6c, 0x73, 0x22, 0x29, 0x0a, 0x0f,
	0x53, 0x65, 0x74, 0x46, 0x72, 0x61, 0x6d, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x16, 0x0a, 0x06, 0x70, 0x69, 0x78, 0x65, 0x6c, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0d, 0x52,
	0x06, 0x70, 0x69, 0x78, 0x65, 0x6c, 0x73, 0x22, 0x2d, 0x0a, 0x0b, 0x46, 0x69, 0x6c, 0x6c, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1e, 0x0a, 0x0a, 0x62, 0x72, 0x69, 0x67, 0x68, 0x74,
	0x6e, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0a, 0x62, 0x72, 0x69, 0x67,
	0x68, 0x74, 0x6e, 0x65, 0x73, 0x73, 0x22, 0x6b, 0x0a, 0x14, 0x50, 0x6c, 0x61, 0x79, 0x41, 0x6e,
	0x69, 0x6d, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12,
	0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61,
	0x6d, 0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x66, 0x72, 0x61, 0x6d, 0x65, 0x5f, 0x63, 0x6f, 0x75, 0x6e,
	0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0a, 0x66, 0x72, 0x61, 0x6d, 0x65, 0x43, 0x6f,
	0x75, 0x6e, 0x74, 0x12, 0x1e, 0x0a, 0x0a, 0x62, 0x72, 0x69, 0x67, 0x68, 0x74, 0x6e, 0x65, 0x73,
	0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0a, 0x62, 0x72, 0x69, 0x67, 0x68, 0x74, 0x6e,
	0x65, 0x73, 0x73, 0x42, 0x24, 0x5a, 0x22, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f,
	0x6d, 0x2f, 0x6c, 0x65, 0x6e, 0x73, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x2f, 0x6c, 0x65, 0x6e, 0x73,
	0x64, 0x2f, 0x6c, 0x65, 0x6e, 0x73, 0x64, 0x70, 0x62, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x33,
}

var (
	file_lensd_proto_rawDescOnce sync.Once
	file_lensd_proto_rawDescData = file_lensd_proto_rawDesc
)

func file_lensd_proto_rawDescGZIP() []byte {
	file_lensd_proto_rawDescOnce.Do(func() {
		file_lensd_proto_rawDescData = protoimpl.X.CompressGZIP(file_lensd_proto_rawDescData)
	})
	return file_lensd_proto_rawDescData
}

var file_lensd_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_lensd_proto_goTypes = []interface{}{
	(*DisplayClientMessage)(nil), // 0: lensd.DisplayClientMessage
	(*DisplayServerMessage)(nil), // 1: lensd.DisplayServerMessage
	(*AuthenticateRequest)(nil),  // 2: lensd.AuthenticateRequest
	(*AuthenticateResponse)(nil), // 3: lensd.AuthenticateResponse
	(*GetShapeInfoRequest)(nil),  // 4: lensd.GetShapeInfoRequest
	(*GetShapeInfoResponse)(nil), // 5: lensd.GetShapeInfoResponse
	(*GetFrameRequest)(nil),      // 6: lensd.GetFrameRequest
	(*GetFrameResponse)(nil),     // 7: lensd.GetFrameResponse
	(*SetFrameRequest)(nil),      // 8: lensd.SetFrameRequest
	(*FillRequest)(nil),          // 9: lensd.FillRequest
	(*PlayAnimationRequest)(nil), // 10: lensd.PlayAnimationRequest
}
var file_lensd_proto_depIdxs = []int32{
	2,  // 0: lensd.DisplayClientMessage.authenticate:type_name -> lensd.AuthenticateRequest
	4,  // 1: lensd.DisplayClientMessage.get_shape_info:type_name -> lensd.GetShapeInfoRequest
	6,  // 2: lensd.DisplayClientMessage.get_frame:type_name -> lensd.GetFrameRequest
	8,  // 3: lensd.DisplayClientMessage.set_frame:type_name -> lensd.SetFrameRequest
	9,  // 4: lensd.DisplayClientMessage.fill:type_name -> lensd.FillRequest
	10, // 5: lensd.DisplayClientMessage.play_animation:type_name -> lensd.PlayAnimationRequest
	3,  // 6: lensd.DisplayServerMessage.authenticate:type_name -> lensd.AuthenticateResponse
	5,  // 7: lensd.DisplayServerMessage.get_shape_info:type_name -> lensd.GetShapeInfoResponse
	7,  // 8: lensd.DisplayServerMessage.get_frame:type_name -> lensd.GetFrameResponse
	9,  // [9:9] is the sub-list for method output_type
	9,  // [9:9] is the sub-list for method input_type
	9,  // [9:9] is the sub-list for extension type_name
	9,  // [9:9] is the sub-list for extension extendee
	0,  // [0:9] is the sub-list for field type_name
}

func init() { file_lensd_proto_init() }
func file_lensd_proto_init() {
	if File_lensd_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_lensd_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*DisplayClientMessage); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*DisplayServerMessage); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*AuthenticateRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*AuthenticateResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[4].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetShapeInfoRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[5].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetShapeInfoResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[6].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetFrameRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[7].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetFrameResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[8].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SetFrameRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[9].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*FillRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_lensd_proto_msgTypes[10].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PlayAnimationRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	file_lensd_proto_msgTypes[0].OneofWrappers = []interface{}{
		(*DisplayClientMessage_Authenticate)(nil),
		(*DisplayClientMessage_GetShapeInfo)(nil),
		(*DisplayClientMessage_GetFrame)(nil),
		(*DisplayClientMessage_SetFrame)(nil),
		(*DisplayClientMessage_Fill)(nil),
		(*DisplayClientMessage_PlayAnimation)(nil),
	}
	file_lensd_proto_msgTypes[1].OneofWrappers = []interface{}{
		(*DisplayServerMessage_Authenticate)(nil),
		(*DisplayServerMessage_GetShapeInfo)(nil),
		(*DisplayServerMessage_GetFrame)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_lensd_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   0,
		},
		GoTypes:           file_lensd_proto_goTypes,
		DependencyIndexes: file_lensd_proto_depIdxs,
		MessageInfos:      file_lensd_proto_msgTypes,
	}.Build()
	File_lensd_proto = out.File
	file_lensd_proto_rawDesc = nil
	file_lensd_proto_goTypes = nil
	file_lensd_proto_depIdxs = nil
}
